package core

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInputType is returned by ConvertStrict when the value is not text.
	ErrInvalidInputType = errors.New("input must be a string")
	// ErrUnknownStyle is returned for a style outside camel|kebab|dot|snake.
	ErrUnknownStyle = errors.New("unknown case style")
)

// Input is a value validated at the boundary: either text or not.
type Input struct {
	text   string
	isText bool
	kind   string // Go type of the rejected value, for diagnostics
}

func Text(s string) Input { return Input{text: s, isText: true} }

func NonText(kind string) Input { return Input{kind: kind} }

// InputOf classifies an arbitrary value (e.g. a decoded JSON field).
// Only string and non-nil *string count as text.
func InputOf(v any) Input {
	switch t := v.(type) {
	case string:
		return Text(t)
	case *string:
		if t != nil {
			return Text(*t)
		}
		return NonText("nil *string")
	case Input:
		return t
	case nil:
		return NonText("nil")
	}
	return NonText(fmt.Sprintf("%T", v))
}

// Text returns the string and whether the input was textual.
func (in Input) Text() (string, bool) { return in.text, in.isText }

// Diagnostics receives a warning whenever the safe variant swallows an error.
// *redislog.Logger satisfies it.
type Diagnostics interface {
	Warn(msg string, meta map[string]string)
}

type discard struct{}

func (discard) Warn(string, map[string]string) {}

// ConvertStrict converts v and lets a type error propagate.
func ConvertStrict(v any, style Style) (string, error) {
	if !style.Valid() {
		return "", ErrUnknownStyle
	}
	in := InputOf(v)
	s, ok := in.Text()
	if !ok {
		return "", errors.Wrapf(ErrInvalidInputType, "got %s", in.kind)
	}
	return ToCase(s, style), nil
}

// Converter is the swallow-and-report variant: errors go to the sink,
// the caller gets ok=false instead.
type Converter struct {
	diag Diagnostics
}

// NewConverter builds a Converter; a nil sink discards diagnostics.
func NewConverter(d Diagnostics) *Converter {
	if d == nil {
		d = discard{}
	}
	return &Converter{diag: d}
}

// Convert returns ("", false) when v cannot be converted.
func (c *Converter) Convert(v any, style Style) (string, bool) {
	out, err := ConvertStrict(v, style)
	if err != nil {
		c.diag.Warn("case conversion failed", map[string]string{
			"style": style.String(),
			"err":   err.Error(),
		})
		return "", false
	}
	return out, true
}

var defaultConverter = NewConverter(nil)

// Convert is Converter.Convert without diagnostics.
func Convert(v any, style Style) (string, bool) {
	return defaultConverter.Convert(v, style)
}
