// small name helpers shared by the comment service
package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName trims surrounding whitespace, collapses inner runs of spaces and
// upper-cases the first letter so authors display consistently.
func NormalizeName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
