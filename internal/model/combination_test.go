package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCombinationKey_Canonical(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  CombinationKey
	}{
		{"empty", nil, ""},
		{"single", []string{"count"}, "count"},
		{"sorted", []string{"output", "count"}, "count output"},
		{"dedupe", []string{"count", "count", "help"}, "count help"},
		{"split keys", []string{"help output", "count"}, "count help output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCombinationKey(tt.names...))
		})
	}
}

func TestCombinationKey_Queries(t *testing.T) {
	key := NewCombinationKey("output", "count")

	assert.Equal(t, []string{"count", "output"}, key.Options())
	assert.Equal(t, 2, key.Len())
	assert.False(t, key.IsEmpty())
	assert.False(t, key.IsSingleton())
	assert.True(t, key.Contains("count"))
	assert.False(t, key.Contains("coun"))
	assert.Equal(t, 1, key.Overlap(NewCombinationKey("count", "help")))
	assert.Equal(t, CombinationKey("count help output"), key.Union("help count"))

	assert.True(t, CombinationKey("").IsEmpty())
	assert.Equal(t, 0, CombinationKey("").Len())
	assert.True(t, CombinationKey("help").IsSingleton())
}
