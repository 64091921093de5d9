package domain

import (
	"math"
	"sort"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// percentile returns the q-th percentile of values using linear
// interpolation between closest ranks. An empty input yields 0.
func percentile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	rank := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))

	if lo == hi {
		return sorted[lo]
	}

	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}

// normalize min-max scales values into [0,1], rounded to four decimals. A
// constant feature scales to 0.
func normalize[K comparable](values map[K]float64) map[K]float64 {
	out := make(map[K]float64, len(values))
	if len(values) == 0 {
		return out
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	span := hi - lo

	for k, v := range values {
		if span == 0 {
			out[k] = 0
			continue
		}

		out[k] = math.Round((v-lo)/span*1e4) / 1e4
	}

	return out
}

// branchWeights gives every branch the normalized rarity 1/(number of
// options whose set contains it).
func branchWeights(obm *m.OptionBranchMap) map[m.BranchID]float64 {
	counts := make(map[m.BranchID]float64)

	for _, set := range obm.Branches {
		for id := range set {
			counts[id]++
		}
	}

	rarity := make(map[m.BranchID]float64, len(counts))
	for id, n := range counts {
		rarity[id] = 1 / n
	}

	return normalize(rarity)
}
