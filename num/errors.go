package num

import "errors"

var (
	// ErrNegative is returned when an operation is undefined for negative input.
	ErrNegative = errors.New("num: negative input")

	// ErrOverflow is returned when a result does not fit in the return type.
	ErrOverflow = errors.New("num: result overflows uint64")
)
