// Package limits guards a run against unbounded execution.
package limits

import "errors"

var ErrBudgetExceeded = errors.New("evaluation step budget exceeded")

// Budget counts evaluation steps. A max of zero means unlimited.
type Budget struct {
	max   int
	steps int
}

func NewBudget(max int) *Budget {
	return &Budget{max: max}
}

// Charge spends one step and fails once the budget is exhausted.
func (b *Budget) Charge() error {
	if b.max <= 0 {
		return nil
	}
	b.steps++
	if b.steps > b.max {
		return ErrBudgetExceeded
	}
	return nil
}

// Steps reports how many steps have been charged so far.
func (b *Budget) Steps() int { return b.steps }
