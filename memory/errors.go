package memory

import "errors"

var (
	// ErrInvalidInput indicates a non-positive dimension, trial count or an out-of-range probability.
	ErrInvalidInput = errors.New("memory: invalid input")
	// ErrNoFit indicates that no candidate grid fits the budget.
	ErrNoFit = errors.New("memory: no grid fits the budget")
)
