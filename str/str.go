package str

import (
	"strings"
	"unicode/utf8"
)

// Reverse returns s with its runes in reverse order.
// Invalid UTF-8 bytes are replaced by [utf8.RuneError].
func Reverse(s string) string {
	if len(s) == 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := len(s); i > 0; {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		sb.WriteRune(r)
		i -= size
	}
	return sb.String()
}
