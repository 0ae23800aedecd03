package arr_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/hasbyte1/go-dsa-utils/arr"
)

// FuzzScans checks Largest, SecondLargest and IsSorted against reference
// computations built on the slices package.
//
// Run with: go test -fuzz=FuzzScans ./arr/
func FuzzScans(f *testing.F) {
	f.Add([]byte{3, 9, 2, 15, 6})
	f.Add([]byte{12, 35, 1, 10, 34, 1})
	f.Add([]byte{7, 7, 7})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, items []byte) {
		largest, err := arr.Largest(items)
		switch {
		case len(items) == 0:
			if !errors.Is(err, arr.ErrEmptyInput) {
				t.Fatalf("Largest(empty) error = %v", err)
			}
		case err != nil || largest != slices.Max(items):
			t.Fatalf("Largest(%v) = %d, %v", items, largest, err)
		}

		second, err := arr.SecondLargest(items)
		if err == nil {
			if second >= largest || !slices.Contains(items, second) {
				t.Fatalf("SecondLargest(%v) = %d with largest %d", items, second, largest)
			}
		} else if !errors.Is(err, arr.ErrNotFound) {
			t.Fatalf("SecondLargest(%v) unexpected error %v", items, err)
		}

		if got, want := arr.IsSorted(items), slices.IsSorted(items); got != want {
			t.Fatalf("IsSorted(%v) = %v; want %v", items, got, want)
		}
	})
}
