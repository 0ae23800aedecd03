package arr

import "errors"

// Sentinel errors returned by the scanning helpers.
var (
	// ErrEmptyInput is returned when an operation requires at least one
	// element but items is empty.
	ErrEmptyInput = errors.New("arr: operation on empty input")

	// ErrNotFound is returned by SecondLargest and SecondLargestFunc when
	// items holds fewer than two distinct values.
	ErrNotFound = errors.New("arr: no second distinct value")
)
