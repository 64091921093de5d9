package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func b(line int) BranchID {
	return BranchID{File: "prog.c", Line: line}
}

func TestOption_Spellings(t *testing.T) {
	opt := Option{Name: "count", Short: "c"}

	assert.Equal(t, "--count", opt.LongSpelling(2))
	assert.Equal(t, "-count", opt.LongSpelling(1))
	assert.Equal(t, "-c", opt.ShortSpelling())
	assert.True(t, opt.HasShort())

	single := Option{Name: "V"}
	assert.Equal(t, "-V", single.LongSpelling(2))
	assert.Equal(t, "", single.ShortSpelling())
	assert.False(t, single.HasShort())
}

func TestParseBranchID(t *testing.T) {
	id, err := ParseBranchID("dir name.c 42")
	require.NoError(t, err)
	assert.Equal(t, BranchID{File: "dir name.c", Line: 42}, id)
	assert.Equal(t, "dir name.c 42", id.String())

	for _, bad := range []string{"", "prog.c", "prog.c x"} {
		_, err := ParseBranchID(bad)
		assert.Error(t, err, bad)
	}
}

func TestBranchSet_Operations(t *testing.T) {
	s := NewBranchSet(b(1), b(2), b(3))

	assert.False(t, s.Add(b(1)))
	assert.True(t, s.Add(b(4)))
	assert.True(t, s.Has(b(4)))

	other := NewBranchSet(b(3), b(4), b(5))
	assert.Equal(t, 2, s.CountIn(other))
	assert.Equal(t, NewBranchSet(b(3), b(4)), s.Intersect(other))
	assert.Len(t, s.Union(other), 5)
	assert.Len(t, s, 4, "Union must not modify the receiver")

	clone := s.Clone()
	assert.Equal(t, 1, clone.Merge(other))
	assert.Len(t, s, 4)

	clone.Subtract(NewBranchSet(b(1), b(2)))
	assert.Equal(t, []BranchID{b(3), b(4), b(5)}, clone.Sorted())

	// larger argument takes the other subtraction path
	small := NewBranchSet(b(1), b(9))
	small.Subtract(NewBranchSet(b(1), b(2), b(3)))
	assert.Equal(t, []BranchID{b(9)}, small.Sorted())
}

func TestBranchSet_SortedByFileThenLine(t *testing.T) {
	s := NewBranchSet(
		BranchID{File: "b.c", Line: 1},
		BranchID{File: "a.c", Line: 10},
		BranchID{File: "a.c", Line: 2},
	)

	assert.Equal(t, []BranchID{
		{File: "a.c", Line: 2},
		{File: "a.c", Line: 10},
		{File: "b.c", Line: 1},
	}, s.Sorted())
}

func TestOptionBranchMap(t *testing.T) {
	obm := NewOptionBranchMap("prog")
	obm.Options["output"] = Option{Name: "output", Short: "o"}
	obm.Options["count"] = Option{Name: "count"}
	obm.Branches["output"] = NewBranchSet(b(1), b(2))
	obm.Branches["count"] = NewBranchSet(b(2), b(3))

	assert.Equal(t, []string{"count", "output"}, obm.Names())
	assert.Len(t, obm.AllBranches(), 3)
	assert.Equal(t, map[string]string{
		"--output": "output",
		"-o":       "output",
		"--count":  "count",
	}, obm.Spellings(2))
}
