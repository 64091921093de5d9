package model

import (
	"sort"
	"strings"
)

// CombinationKey identifies a set of options tested together. The zero value
// is the empty combination. Keys are canonical: sorted, deduplicated option
// names joined by a single space, so equal sets always produce equal keys.
type CombinationKey string

// NewCombinationKey canonicalizes names into a key.
func NewCombinationKey(names ...string) CombinationKey {
	seen := make(map[string]struct{}, len(names))
	uniq := make([]string, 0, len(names))

	for _, name := range names {
		for _, part := range strings.Fields(name) {
			if _, ok := seen[part]; ok {
				continue
			}

			seen[part] = struct{}{}
			uniq = append(uniq, part)
		}
	}

	sort.Strings(uniq)

	return CombinationKey(strings.Join(uniq, " "))
}

// Options returns the option names of the combination in canonical order.
func (k CombinationKey) Options() []string {
	return strings.Fields(string(k))
}

// Len returns the number of options.
func (k CombinationKey) Len() int {
	return len(k.Options())
}

// IsEmpty reports whether the combination holds no options.
func (k CombinationKey) IsEmpty() bool {
	return k == ""
}

// IsSingleton reports whether the key is exactly one option.
func (k CombinationKey) IsSingleton() bool {
	return k != "" && !strings.Contains(string(k), " ")
}

// Contains reports whether name is part of the combination.
func (k CombinationKey) Contains(name string) bool {
	for _, opt := range k.Options() {
		if opt == name {
			return true
		}
	}

	return false
}

// Overlap returns how many options of k are also in other.
func (k CombinationKey) Overlap(other CombinationKey) int {
	set := make(map[string]struct{})
	for _, opt := range other.Options() {
		set[opt] = struct{}{}
	}

	n := 0

	for _, opt := range k.Options() {
		if _, ok := set[opt]; ok {
			n++
		}
	}

	return n
}

// Union merges two keys.
func (k CombinationKey) Union(other CombinationKey) CombinationKey {
	return NewCombinationKey(string(k), string(other))
}
