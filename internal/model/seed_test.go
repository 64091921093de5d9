package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seeds(pairs ...any) SeedList {
	out := make(SeedList, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Seed{Path: Path(pairs[i].(string)), Coverage: pairs[i+1].(int)})
	}

	return out
}

func paths(list SeedList) []Path {
	out := make([]Path, 0, len(list))
	for _, s := range list {
		out = append(out, s.Path)
	}

	return out
}

func TestSortSeeds_Stable(t *testing.T) {
	list := seeds("a", 1, "b", 3, "c", 1, "d", 3)
	SortSeeds(list)

	assert.Equal(t, []Path{"b", "d", "a", "c"}, paths(list))
}

func TestMergeTopK(t *testing.T) {
	tests := []struct {
		name string
		a, b SeedList
		k    int
		want []Path
	}{
		{"bounded", seeds("a", 5, "b", 2), seeds("c", 4, "d", 1), 3, []Path{"a", "c", "b"}},
		{"ties prefer a", seeds("a", 3), seeds("b", 3), 2, []Path{"a", "b"}},
		{"duplicate path kept once", seeds("a", 3), seeds("a", 3, "b", 1), 5, []Path{"a", "b"}},
		{"zero k", seeds("a", 1), nil, 0, []Path{}},
		{"both empty", nil, nil, 3, []Path{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeTopK(tt.a, tt.b, tt.k)

			assert.Equal(t, tt.want, paths(got))
			assert.LessOrEqual(t, len(got), max(tt.k, 0))

			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].Coverage, got[i].Coverage)
			}
		})
	}
}
