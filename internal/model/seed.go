package model

import "sort"

// Seed is a concrete test input retained for reuse as an engine seed.
type Seed struct {
	Path Path
	// Coverage is the number of option-related branches the input covers.
	Coverage int

	// Replayed is set once Depth and Args have been recovered.
	Replayed bool
	// Depth is how many seeding steps the engine satisfied before it fell
	// back to free exploration. Lower means more fully explored.
	Depth int
	// Args are the argument tokens recovered by replaying the input. Nil
	// with Replayed set means replay produced no argument trace.
	Args []string
}

// SeedList is a bounded list of seeds kept sorted by descending Coverage.
type SeedList []Seed

// SortSeeds orders seeds by descending coverage. Equal coverage keeps the
// original order.
func SortSeeds(seeds []Seed) {
	sort.SliceStable(seeds, func(i, j int) bool {
		return seeds[i].Coverage > seeds[j].Coverage
	})
}

// MergeTopK merges two lists that are already sorted by descending coverage
// and keeps at most k entries. Entries of a win ties so that earlier seeds
// are preferred. A path present in both lists is kept once.
func MergeTopK(a, b SeedList, k int) SeedList {
	if k <= 0 {
		return SeedList{}
	}

	out := make(SeedList, 0, min(k, len(a)+len(b)))
	seen := make(map[Path]struct{}, k)

	i, j := 0, 0
	for len(out) < k && (i < len(a) || j < len(b)) {
		var next Seed

		switch {
		case j >= len(b) || (i < len(a) && a[i].Coverage >= b[j].Coverage):
			next = a[i]
			i++
		default:
			next = b[j]
			j++
		}

		if _, dup := seen[next.Path]; dup {
			continue
		}

		seen[next.Path] = struct{}{}
		out = append(out, next)
	}

	return out
}
