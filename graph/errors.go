package graph

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEquation = errors.New("unknown equation")
	ErrInvalidID       = errors.New("invalid equation id")
	ErrInvalidSize     = errors.New("invalid canvas size")
)

// EvaluationError is returned when the evaluator of an equation fails while being sampled.
type EvaluationError struct {
	ID  int
	X   float64
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("equation %d at x=%g: %v", e.ID, e.X, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
