package main

import (
	"golang.org/x/xerrors"
)

// Every evaluation failure matches exactly one of these with xerrors.Is.
var (
	errInsufficientOperands = xerrors.New("not enough operands")
	errUnknownOperator      = xerrors.New("unknown operator")
	errFactorialOverflow    = xerrors.New("factorial overflow")
	errEmptyResult          = xerrors.New("nothing to evaluate")
)

// unknownOperatorError carries the token that is neither a number nor
// in the ops table.
type unknownOperatorError struct {
	name string
}

func (e *unknownOperatorError) Error() string {
	return "unknown operator " + e.name
}

func (e *unknownOperatorError) Is(target error) bool {
	return target == errUnknownOperator
}

func insufficientOperands(token string) error {
	return xerrors.Errorf("%s: %w", token, errInsufficientOperands)
}

func factorialOverflow(n float64) error {
	return xerrors.Errorf("%v! is above %d!: %w", n, maxFactorial, errFactorialOverflow)
}
