package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidTaskInput = errors.New("invalid task input")
	ErrInvalidPriority  = errors.New("invalid priority")

	ErrInvalidArgument = errors.New("invalid argument")
	ErrDivisionByZero  = errors.New("division by zero")

	ErrNegativeSquareRoot = fmt.Errorf("%w: square root of a negative number", ErrInvalidArgument)
	ErrNegativeFactorial  = fmt.Errorf("%w: factorial of a negative number", ErrInvalidArgument)
	ErrFactorialOverflow  = fmt.Errorf("%w: factorial input exceeds %d", ErrInvalidArgument, MaxFactorialInput)
)
