package domain

import (
	"math/rand/v2"

	m "github.com/anonymousfse26/orbis/internal/model"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func br(line int) m.BranchID {
	return m.BranchID{File: "prog.c", Line: line}
}

// testBranchMap builds a map whose options own the given lines.
func testBranchMap(owned map[string][]int) *m.OptionBranchMap {
	obm := m.NewOptionBranchMap("prog")

	for name, ls := range owned {
		set := make(m.BranchSet)
		for _, l := range ls {
			set.Add(br(l))
		}

		obm.Options[name] = m.Option{Name: name}
		obm.Branches[name] = set
	}

	return obm
}
