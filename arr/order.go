package arr

import "cmp"

// IsSorted reports whether items is in non-strict ascending order.
// Empty and single-element slices are sorted.
func IsSorted[T cmp.Ordered](items []T) bool {
	return IsSortedFunc(items, cmp.Compare[T])
}

// IsSortedFunc reports whether items is in non-strict ascending order under
// compare. It stops at the first adjacent pair that is out of order.
func IsSortedFunc[T any](items []T, compare func(a, b T) int) bool {
	for i := 1; i < len(items); i++ {
		if compare(items[i-1], items[i]) > 0 {
			return false
		}
	}
	return true
}

// Reverse returns a new slice with the elements of items in reverse order.
// A nil slice yields nil.
func Reverse[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
