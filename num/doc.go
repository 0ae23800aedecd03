// Package num provides integer helpers with explicit error returns instead of
// silent overflow.
package num
