// Package str provides small, allocation-conscious string helpers that work
// on Unicode code points rather than bytes.
//
//	str.Reverse("hello") // → "olleh"
//	str.Reverse("héllo") // → "olléh"
package str
