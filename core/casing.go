// case conversion (camelCase, kebab-case, dot.case, snake_case).
// Pure logic: no HTTP, no DB, safe for concurrent use.

package core

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style selects the joiner and capitalization rule applied to a word sequence.
type Style int

const (
	Camel Style = iota + 1 // helloWorld
	Kebab                  // hello-world
	Dot                    // hello.world
	Snake                  // hello_world
)

var styleNames = map[Style]string{
	Camel: "camel",
	Kebab: "kebab",
	Dot:   "dot",
	Snake: "snake",
}

// Styles lists every supported style in a stable order.
func Styles() []Style { return []Style{Camel, Kebab, Dot, Snake} }

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the supported styles.
func (s Style) Valid() bool {
	_, ok := styleNames[s]
	return ok
}

// ParseStyle maps "camel" / "kebab" / "dot" / "snake" (case-insensitive) to a Style.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range styleNames {
		if n == name {
			return s, nil
		}
	}
	return 0, ErrUnknownStyle
}

// rune classes used by the word splitter
type class int

const (
	classStripped class = iota // dropped, no boundary
	classDelimiter
	classLower
	classUpper
	classDigit
	classLetter // letters without a lowercase form (CJK, titlecase, etc.)
)

func classify(r rune) class {
	switch {
	case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
		return classDelimiter
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r) && unicode.ToLower(r) != r:
		return classUpper
	case unicode.IsDigit(r):
		return classDigit
	case unicode.IsLetter(r):
		return classLetter
	}
	return classStripped
}

// Words splits s into lowercase alphanumeric tokens.
// Boundaries: delimiter runs, lower->Upper transitions and the last capital of an
// acronym that is followed by a lowercase letter ("JSONResponse" -> json, response).
// Returns nil when s holds no alphanumeric rune.
func Words(s string) []string {
	rs := []rune(strings.TrimSpace(s))

	var (
		words []string
		cur   []rune
	)
	lower := cases.Lower(language.Und) // Caser is stateful; one per call
	flush := func() {
		if len(cur) > 0 {
			// full lowercasing can add combining marks (İ -> i + U+0307)
			if w := strings.Map(alnumLower, lower.String(string(cur))); w != "" {
				words = append(words, w)
			}
			cur = cur[:0]
		}
	}

	for i, r := range rs {
		c := classify(r)
		switch c {
		case classDelimiter:
			flush()
			continue
		case classStripped:
			continue
		}
		if c == classUpper && i > 0 {
			prev := classify(rs[i-1])
			if prev == classLower {
				flush() // camelCase
			} else if prev == classUpper && i+1 < len(rs) && classify(rs[i+1]) == classLower {
				flush() // ACRONYMWord
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func alnumLower(r rune) rune {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return -1
	}
	return unicode.ToLower(r)
}

type formatter func(words []string) string

func joiner(sep string) formatter {
	return func(words []string) string { return strings.Join(words, sep) }
}

func camel(words []string) string {
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}

var formatters = map[Style]formatter{
	Camel: camel,
	Kebab: joiner("-"),
	Dot:   joiner("."),
	Snake: joiner("_"),
}

// Format renders an already split word sequence. Empty input or an unknown style gives "".
func Format(words []string, style Style) string {
	f, ok := formatters[style]
	if !ok || len(words) == 0 {
		return ""
	}
	return f(words)
}

// ToCase converts text to the given style.
func ToCase(s string, style Style) string {
	if s == "" {
		return ""
	}
	return Format(Words(s), style)
}

func ToCamel(s string) string { return ToCase(s, Camel) }
func ToKebab(s string) string { return ToCase(s, Kebab) }
func ToDot(s string) string   { return ToCase(s, Dot) }
func ToSnake(s string) string { return ToCase(s, Snake) }
