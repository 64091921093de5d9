package domain

import (
	"math/rand/v2"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// Spelling selects how options are written on the command line.
type Spelling int

// Available spellings.
const (
	SpellingLong Spelling = iota
	SpellingShort
)

func (s Spelling) String() string {
	if s == SpellingShort {
		return "short"
	}

	return "long"
}

// SpellingPolicy decides between long and short option forms from the
// coverage each form achieved so far.
type SpellingPolicy struct {
	warmup int
	rng    *rand.Rand
	short  []int
	long   []int
}

// NewSpellingPolicy returns a policy that warms up for warmup trials.
func NewSpellingPolicy(warmup int, rng *rand.Rand) *SpellingPolicy {
	return &SpellingPolicy{warmup: warmup, rng: rng}
}

// Choose returns the spelling of the next iteration.
func (p *SpellingPolicy) Choose() Spelling {
	if len(p.short)+len(p.long) < p.warmup {
		switch {
		case len(p.long) == 0:
			return SpellingLong
		case len(p.short) == 0:
			return SpellingShort
		}

		if p.rng.Float64() < 0.5 {
			return SpellingShort
		}

		return SpellingLong
	}

	avgShort, avgLong := mean(p.short), mean(p.long)
	if avgShort+avgLong == 0 {
		if p.rng.Float64() < 0.5 {
			return SpellingShort
		}

		return SpellingLong
	}

	if p.rng.Float64() < avgShort/(avgShort+avgLong) {
		return SpellingShort
	}

	return SpellingLong
}

// Record stores the coverage of an iteration run with spelling. Iterations
// that covered nothing are not recorded.
func (p *SpellingPolicy) Record(spelling Spelling, coverage int) {
	if coverage <= 0 {
		return
	}

	if spelling == SpellingShort {
		p.short = append(p.short, coverage)
	} else {
		p.long = append(p.long, coverage)
	}
}

// RenderArguments writes the options of key in the chosen spelling. Options
// without a short form always use the long one.
func RenderArguments(obm *m.OptionBranchMap, key m.CombinationKey, spelling Spelling, numDash int) []string {
	args := make([]string, 0, key.Len())

	for _, name := range key.Options() {
		opt, ok := obm.Options[name]
		if !ok {
			opt = m.Option{Name: name}
		}

		if spelling == SpellingShort && opt.HasShort() {
			args = append(args, opt.ShortSpelling())
		} else {
			args = append(args, opt.LongSpelling(numDash))
		}
	}

	return args
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	return float64(sum) / float64(len(values))
}
