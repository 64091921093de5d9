package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		q      float64
		want   float64
	}{
		{name: "upper quartile interpolates", values: []float64{12, 11, 1}, q: 75, want: 11.5},
		{name: "median", values: []float64{3, 1, 2}, q: 50, want: 2},
		{name: "single value", values: []float64{7}, q: 75, want: 7},
		{name: "empty", values: nil, q: 75, want: 0},
		{name: "max", values: []float64{1, 5, 3}, q: 100, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, percentile(tt.values, tt.q), 1e-9)
		})
	}
}

func TestNormalize(t *testing.T) {
	got := normalize(map[string]float64{"a": 1, "b": 3, "c": 2})
	assert.Equal(t, map[string]float64{"a": 0, "b": 1, "c": 0.5}, got)

	constant := normalize(map[string]float64{"a": 4, "b": 4})
	assert.Equal(t, map[string]float64{"a": 0, "b": 0}, constant)

	assert.Empty(t, normalize(map[string]float64{}))

	rounded := normalize(map[string]float64{"a": 0, "b": 1, "c": 3})
	assert.InDelta(t, 0.3333, rounded["b"], 1e-12)
}

func TestBranchWeights(t *testing.T) {
	obm := testBranchMap(map[string][]int{
		"a": {1, 2},
		"b": {2},
	})

	weights := branchWeights(obm)

	assert.InDelta(t, 1, weights[br(1)], 1e-9)
	assert.InDelta(t, 0, weights[br(2)], 1e-9)
}
