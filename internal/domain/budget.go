package domain

import "time"

// BudgetPlanner computes the time allocation of each iteration.
type BudgetPlanner struct {
	base    time.Duration
	options int
}

// NewBudgetPlanner starts from the initial per-iteration budget. options is
// the size of the option set; the base doubles after every full cycle.
func NewBudgetPlanner(initial time.Duration, options int) *BudgetPlanner {
	if options < 1 {
		options = 1
	}

	return &BudgetPlanner{base: initial, options: options}
}

// Next returns the budget of iteration i (1-based), capped at remaining.
func (b *BudgetPlanner) Next(i int, remaining time.Duration) time.Duration {
	if i > 1 && (i-1)%b.options == 0 {
		b.base *= 2
	}

	if remaining < b.base {
		return max(remaining, 0)
	}

	return b.base
}
