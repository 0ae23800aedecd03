package arr

import "cmp"

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// Largest returns the maximum element of items.
// Returns the zero value and [ErrEmptyInput] when items is empty.
func Largest[T cmp.Ordered](items []T) (T, error) {
	return LargestFunc(items, cmp.Compare[T])
}

// LargestFunc returns the maximum element of items under compare.
// When several elements are maximal the first one wins.
func LargestFunc[T any](items []T, compare func(a, b T) int) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyInput
	}
	largest := items[0]
	for _, item := range items[1:] {
		if compare(item, largest) > 0 {
			largest = item
		}
	}
	return largest, nil
}

// Smallest returns the minimum element of items.
// Returns the zero value and [ErrEmptyInput] when items is empty.
func Smallest[T cmp.Ordered](items []T) (T, error) {
	return SmallestFunc(items, cmp.Compare[T])
}

// SmallestFunc returns the minimum element of items under compare.
// When several elements are minimal the first one wins.
func SmallestFunc[T any](items []T, compare func(a, b T) int) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyInput
	}
	smallest := items[0]
	for _, item := range items[1:] {
		if compare(item, smallest) < 0 {
			smallest = item
		}
	}
	return smallest, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Second largest
// ─────────────────────────────────────────────────────────────────────────────

// SecondLargest returns the largest value strictly smaller than the maximum
// of items. Duplicates of the maximum are not a distinct second value.
// Returns [ErrNotFound] when items holds fewer than two distinct values.
//
//	arr.SecondLargest([]int{12, 35, 1, 10, 34, 1}) // → 34, nil
//	arr.SecondLargest([]int{7, 7, 7})              // → 0, ErrNotFound
func SecondLargest[T cmp.Ordered](items []T) (T, error) {
	return SecondLargestFunc(items, cmp.Compare[T])
}

// SecondLargestFunc is [SecondLargest] under compare. Two elements are the
// same value when compare returns 0.
func SecondLargestFunc[T any](items []T, compare func(a, b T) int) (T, error) {
	var largest, second T
	// An unset running value behaves as negative infinity.
	hasLargest, hasSecond := false, false
	for _, item := range items {
		switch {
		case !hasLargest || compare(item, largest) > 0:
			if hasLargest {
				second, hasSecond = largest, true
			}
			largest, hasLargest = item, true
		case compare(item, largest) != 0 && (!hasSecond || compare(item, second) > 0):
			second, hasSecond = item, true
		}
	}
	if !hasSecond {
		var zero T
		return zero, ErrNotFound
	}
	return second, nil
}
