package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Option is a command-line flag of the program under test.
type Option struct {
	// Name is the canonical long form without leading dashes.
	Name string
	// Short is the optional single-character form, without the dash.
	Short string
	// Variables are source-level names believed to control the option.
	Variables []string
}

// HasShort reports whether the option has a single-character form.
func (o Option) HasShort() bool {
	return o.Short != ""
}

// LongSpelling renders the long form with the program's dash convention.
func (o Option) LongSpelling(numDash int) string {
	if len(o.Name) == 1 {
		return "-" + o.Name
	}

	return strings.Repeat("-", numDash) + o.Name
}

// ShortSpelling renders the short form, or "" when there is none.
func (o Option) ShortSpelling() string {
	if o.Short == "" {
		return ""
	}

	return "-" + o.Short
}

// BranchID identifies one conditional in the program source by file base
// name and 1-based line.
type BranchID struct {
	File string
	Line int
}

func (b BranchID) String() string {
	return fmt.Sprintf("%s %d", b.File, b.Line)
}

// ParseBranchID parses the "file line" form used in persisted maps.
func ParseBranchID(s string) (BranchID, error) {
	idx := strings.LastIndexByte(strings.TrimSpace(s), ' ')
	if idx <= 0 {
		return BranchID{}, fmt.Errorf("malformed branch id %q", s)
	}

	s = strings.TrimSpace(s)

	line, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return BranchID{}, fmt.Errorf("malformed branch line in %q: %w", s, err)
	}

	return BranchID{File: s[:idx], Line: line}, nil
}

// BranchSet is a set of branch identifiers.
type BranchSet map[BranchID]struct{}

// NewBranchSet builds a set from the given ids.
func NewBranchSet(ids ...BranchID) BranchSet {
	set := make(BranchSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// Add inserts id and reports whether it was new.
func (s BranchSet) Add(id BranchID) bool {
	if _, ok := s[id]; ok {
		return false
	}

	s[id] = struct{}{}

	return true
}

// Has reports membership.
func (s BranchSet) Has(id BranchID) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy.
func (s BranchSet) Clone() BranchSet {
	out := make(BranchSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Merge adds every element of other to s and returns how many were new.
func (s BranchSet) Merge(other BranchSet) int {
	added := 0

	for id := range other {
		if s.Add(id) {
			added++
		}
	}

	return added
}

// Union returns a new set holding the elements of both sets.
func (s BranchSet) Union(other BranchSet) BranchSet {
	out := s.Clone()
	out.Merge(other)

	return out
}

// Subtract removes every element of other from s in place.
func (s BranchSet) Subtract(other BranchSet) {
	if len(other) < len(s) {
		for id := range other {
			delete(s, id)
		}

		return
	}

	for id := range s {
		if other.Has(id) {
			delete(s, id)
		}
	}
}

// Intersect returns a new set holding the elements present in both sets.
func (s BranchSet) Intersect(other BranchSet) BranchSet {
	out := make(BranchSet)
	for id := range s {
		if other.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// CountIn returns |s ∩ other|.
func (s BranchSet) CountIn(other BranchSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	n := 0

	for id := range small {
		if large.Has(id) {
			n++
		}
	}

	return n
}

// Sorted returns the elements ordered by file then line.
func (s BranchSet) Sorted() []BranchID {
	out := make([]BranchID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}

		return out[i].Line < out[j].Line
	})

	return out
}

// OptionBranchMap maps every extracted option to the branches its handling
// code controls. It is built once per program and read-only afterwards.
type OptionBranchMap struct {
	Program  string
	Options  map[string]Option
	Branches map[string]BranchSet
	// ShortOnly lists short options that have no long form.
	ShortOnly []string
}

// NewOptionBranchMap returns an empty map for program.
func NewOptionBranchMap(program string) *OptionBranchMap {
	return &OptionBranchMap{
		Program:  program,
		Options:  make(map[string]Option),
		Branches: make(map[string]BranchSet),
	}
}

// Names returns the option names in sorted order.
func (m *OptionBranchMap) Names() []string {
	names := make([]string, 0, len(m.Options))
	for name := range m.Options {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// AllBranches returns the union of every option's branch set.
func (m *OptionBranchMap) AllBranches() BranchSet {
	all := make(BranchSet)
	for _, set := range m.Branches {
		all.Merge(set)
	}

	return all
}

// Spellings maps every rendered spelling ("--name", "-n") to its option.
func (m *OptionBranchMap) Spellings(numDash int) map[string]string {
	out := make(map[string]string, 2*len(m.Options))

	for name, opt := range m.Options {
		out[opt.LongSpelling(numDash)] = name
		if opt.HasShort() {
			out[opt.ShortSpelling()] = name
		}
	}

	return out
}
