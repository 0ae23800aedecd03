// Package arr provides standalone, generic scans over plain Go slices:
// extremes, second-largest, ordering checks and reversal.
//
// # Ordered helpers
//
// Helpers without a suffix accept any [cmp.Ordered] element type and compare
// with [cmp.Compare], so float inputs follow a total order in which NaN sorts
// before every other value:
//
//	max, _ := arr.Largest([]int{3, 9, 2, 15, 6})             // → 15
//	second, _ := arr.SecondLargest([]int{12, 35, 1, 10, 34}) // → 34
//	arr.IsSorted([]int{1, 2, 3, 4, 5})                       // → true
//	arr.Reverse([]int{1, 2, 3})                              // → [3 2 1]
//
// # Func variants
//
// Every ordered helper has a Func variant taking a three-way comparison, for
// element types that are not ordered themselves:
//
//	oldest, _ := arr.LargestFunc(users, func(a, b User) int {
//	    return cmp.Compare(a.Age, b.Age)
//	})
//
// # Errors
//
// Operations that need at least one element return [ErrEmptyInput];
// SecondLargest returns [ErrNotFound] when fewer than two distinct values
// exist. No helper mutates its input.
package arr
