package domain

import (
	"math/rand/v2"
	"sort"
	"time"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// Sampler chooses the option combination of the next iteration from the
// coverage history of every combination tried so far.
type Sampler interface {
	// Select returns a non-empty combination without repeated options.
	Select() m.CombinationKey
	// Update feeds back the branches covered by one iteration.
	Update(covered m.BranchSet, key m.CombinationKey, runtime, budget time.Duration)
	// Uncovered returns a copy of the branches of key not covered yet.
	Uncovered(key m.CombinationKey) m.BranchSet
	// Scores returns the current normalized score of every combination.
	Scores() map[m.CombinationKey]float64
	Stats() []m.OptionStats
}

// SamplerOptions tune the selection policy.
type SamplerOptions struct {
	ExploreRate float64
	// BadFloor is the failure count below which an option is never bad.
	BadFloor float64
	// Picks is how many combinations are merged per selection.
	Picks int
}

// scoreboardEntry holds the sufficient statistics of one combination.
type scoreboardEntry struct {
	branches  m.BranchSet
	uncovered m.BranchSet
	covered   m.BranchSet
	history   []int
	selected  float64
	failures  float64
}

type sampler struct {
	options []string
	entries map[m.CombinationKey]*scoreboardEntry
	weights map[m.BranchID]float64
	opts    SamplerOptions
	rng     *rand.Rand
}

// NewSampler builds a scoreboard with one singleton entry per option.
func NewSampler(obm *m.OptionBranchMap, opts SamplerOptions, rng *rand.Rand) Sampler {
	if opts.Picks < 1 {
		opts.Picks = 2
	}

	s := &sampler{
		options: obm.Names(),
		entries: make(map[m.CombinationKey]*scoreboardEntry, len(obm.Options)),
		weights: branchWeights(obm),
		opts:    opts,
		rng:     rng,
	}

	for _, name := range s.options {
		branches := obm.Branches[name]
		if branches == nil {
			branches = make(m.BranchSet)
		}

		s.entries[m.NewCombinationKey(name)] = &scoreboardEntry{
			branches:  branches.Clone(),
			uncovered: branches.Clone(),
			covered:   make(m.BranchSet),
		}
	}

	return s
}

func (s *sampler) Select() m.CombinationKey {
	var unselected []string

	for _, name := range s.options {
		if s.entries[m.CombinationKey(name)].selected == 0 {
			unselected = append(unselected, name)
		}
	}

	if len(unselected) > 0 {
		key := m.NewCombinationKey(unselected[s.rng.IntN(len(unselected))])
		s.ensure(key)

		return key
	}

	scores := s.Scores()
	pool := s.candidatePool()

	var picks []m.CombinationKey

	if s.rng.Float64() < s.opts.ExploreRate {
		picks = s.explore(pool)
	}

	if len(picks) == 0 {
		picks = s.exploit(pool, scores)
	}

	parts := make([]string, 0, len(picks))
	for _, pick := range picks {
		parts = append(parts, string(pick))
	}

	key := m.NewCombinationKey(parts...)
	s.ensure(key)

	return key
}

// candidatePool lists the combinations without a bad option, or every
// combination when all of them contain one.
func (s *sampler) candidatePool() []m.CombinationKey {
	bad := s.badOptions()
	all := s.keys()

	pool := make([]m.CombinationKey, 0, len(all))

	for _, key := range all {
		excluded := false

		for _, opt := range key.Options() {
			if bad[opt] {
				excluded = true
				break
			}
		}

		if !excluded {
			pool = append(pool, key)
		}
	}

	if len(pool) == 0 {
		return all
	}

	return pool
}

// explore picks uniformly among the candidates that still have uncovered
// branches.
func (s *sampler) explore(pool []m.CombinationKey) []m.CombinationKey {
	open := make([]m.CombinationKey, 0, len(pool))

	for _, key := range pool {
		if len(s.entries[key].uncovered) > 0 {
			open = append(open, key)
		}
	}

	picks := make([]m.CombinationKey, 0, s.opts.Picks)

	for len(picks) < s.opts.Picks && len(open) > 0 {
		i := s.rng.IntN(len(open))
		picks = append(picks, open[i])
		open = append(open[:i], open[i+1:]...)
	}

	return picks
}

// exploit draws weighted by score without replacement. A pool whose
// weights sum to zero is drawn uniformly.
func (s *sampler) exploit(pool []m.CombinationKey, scores map[m.CombinationKey]float64) []m.CombinationKey {
	candidates := append([]m.CombinationKey(nil), pool...)
	picks := make([]m.CombinationKey, 0, s.opts.Picks)

	for len(picks) < s.opts.Picks && len(candidates) > 0 {
		total := 0.0
		for _, key := range candidates {
			total += scores[key]
		}

		i := s.rng.IntN(len(candidates))

		if total > 0 {
			r := s.rng.Float64() * total

			for j, key := range candidates {
				r -= scores[key]
				if r < 0 {
					i = j
					break
				}
			}
		}

		picks = append(picks, candidates[i])
		candidates = append(candidates[:i], candidates[i+1:]...)
	}

	return picks
}

func (s *sampler) badOptions() map[string]bool {
	failures := make([]float64, 0, len(s.options))
	for _, name := range s.options {
		failures = append(failures, s.entries[m.CombinationKey(name)].failures)
	}

	q3 := percentile(failures, 75)
	bad := make(map[string]bool)

	for _, name := range s.options {
		f := s.entries[m.CombinationKey(name)].failures
		if f > q3 && f >= s.opts.BadFloor {
			bad[name] = true
		}
	}

	return bad
}

func (s *sampler) Update(covered m.BranchSet, key m.CombinationKey, runtime, budget time.Duration) {
	s.ensure(key)

	for _, entry := range s.entries {
		entry.uncovered.Subtract(covered)
	}

	if len(covered) == 0 || runtime < budget {
		for _, opt := range key.Options() {
			if entry, ok := s.entries[m.CombinationKey(opt)]; ok {
				entry.failures++
			}
		}
	}

	if key.IsEmpty() {
		return
	}

	for k, entry := range s.entries {
		overlap := k.Overlap(key)
		if overlap == 0 {
			continue
		}

		if overlap == k.Len() {
			entry.covered.Merge(covered)
			entry.history = append(entry.history, len(covered))
		}

		entry.selected += float64(overlap) / float64(k.Len())
	}
}

// ensure synthesizes the entry of a combination seen for the first time
// from its options' entries.
func (s *sampler) ensure(key m.CombinationKey) {
	if key.IsEmpty() {
		return
	}

	if _, ok := s.entries[key]; ok {
		return
	}

	entry := &scoreboardEntry{
		branches:  make(m.BranchSet),
		uncovered: make(m.BranchSet),
		covered:   make(m.BranchSet),
	}

	var parts []string

	for _, opt := range key.Options() {
		part, ok := s.entries[m.CombinationKey(opt)]
		if !ok {
			continue
		}

		parts = append(parts, opt)
		entry.branches.Merge(part.branches)
		entry.uncovered.Merge(part.uncovered)
		entry.covered.Merge(part.covered)
		entry.history = append(entry.history, part.history...)
		entry.selected += part.selected
		entry.failures += part.failures
	}

	if len(parts) > 0 {
		entry.selected /= float64(len(parts))
		entry.failures /= float64(len(parts))
	}

	s.entries[key] = entry
}

func (s *sampler) Uncovered(key m.CombinationKey) m.BranchSet {
	entry, ok := s.entries[key]
	if !ok {
		return nil
	}

	return entry.uncovered.Clone()
}

func (s *sampler) Scores() map[m.CombinationKey]float64 {
	wob := make(map[m.CombinationKey]float64, len(s.entries))
	coveredCount := make(map[m.CombinationKey]float64, len(s.entries))
	meanHistory := make(map[m.CombinationKey]float64, len(s.entries))
	lso := make(map[m.CombinationKey]float64, len(s.entries))

	for key, entry := range s.entries {
		sum := 0.0
		for id := range entry.uncovered {
			sum += s.weights[id]
		}

		wob[key] = sum
		coveredCount[key] = float64(len(entry.covered))

		total := 0
		for _, n := range entry.history {
			total += n
		}

		meanHistory[key] = float64(total) / (float64(len(entry.history)) + 0.001)

		selected := entry.selected
		if selected <= 0 {
			selected = 0.001
		}

		lso[key] = 1 / selected
	}

	normWob := normalize(wob)
	normCovered := normalize(coveredCount)
	normHistory := normalize(meanHistory)
	normLso := normalize(lso)

	bc := make(map[m.CombinationKey]float64, len(s.entries))
	for key := range s.entries {
		bc[key] = normCovered[key] + normHistory[key]
	}

	normBc := normalize(bc)

	total := make(map[m.CombinationKey]float64, len(s.entries))
	for key := range s.entries {
		total[key] = normWob[key] + normBc[key] + 3*normLso[key]
	}

	return normalize(total)
}

func (s *sampler) Stats() []m.OptionStats {
	stats := make([]m.OptionStats, 0, len(s.options))

	for _, name := range s.options {
		entry := s.entries[m.CombinationKey(name)]
		stats = append(stats, m.OptionStats{
			Name:      name,
			Branches:  len(entry.branches),
			Uncovered: len(entry.uncovered),
			Selected:  entry.selected,
			Failures:  entry.failures,
		})
	}

	return stats
}

// keys returns every known combination in sorted order.
func (s *sampler) keys() []m.CombinationKey {
	keys := make([]m.CombinationKey, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}
