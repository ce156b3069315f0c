package colors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseError reports color text that matches none of the supported grammars.
type ParseError struct {
	Input  string // The text as given by the caller
	Reason string // Optional detail, e.g. which channel was out of range
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported color %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("unsupported color %q: expected #rgb, #rrggbb, rgb(r, g, b) or rgba(r, g, b, a)", e.Input)
}

var (
	hexPattern = regexp.MustCompile(`^#(?:[0-9a-f]{3}|[0-9a-f]{6})$`)
	// rgb() takes exactly three channels; rgba() adds a required alpha.
	rgbPattern = regexp.MustCompile(`^(?:rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)|rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d*\.?\d+)\s*\))$`)
)

// ParseColor converts color text into an RGB triple.
//
// Grammars are tried in order: #RGB, #RRGGBB, rgb()/rgba(). Channel values
// above 255 and alpha values above 1 are rejected rather than clamped.
//
// Returns a *ParseError when the text is not a supported color.
func ParseColor(text string) (RGBColor, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	if strings.HasPrefix(s, "#") {
		if !hexPattern.MatchString(s) {
			return RGBColor{}, &ParseError{Input: text, Reason: fmt.Sprintf("hex color must have 3 or 6 digits, got %q", s[1:])}
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return RGBColor{}, &ParseError{Input: text, Reason: err.Error()}
		}
		r, g, b := c.RGB255()
		return RGBColor{R: r, G: g, B: b}, nil
	}

	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGBColor{}, &ParseError{Input: text}
	}

	// Groups 1-3 hold rgb() channels, 4-6 rgba() channels and 7 its alpha.
	fields, alpha := m[1:4], m[7]
	if strings.HasPrefix(s, "rgba") {
		fields = m[4:7]
	}

	var channels [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.Atoi(fields[i])
		if err != nil || v > 255 {
			return RGBColor{}, &ParseError{Input: text, Reason: fmt.Sprintf("%s channel %s out of range 0-255", name, fields[i])}
		}
		channels[i] = uint8(v)
	}

	if alpha != "" {
		a, err := strconv.ParseFloat(alpha, 64)
		if err != nil || a > 1 {
			return RGBColor{}, &ParseError{Input: text, Reason: fmt.Sprintf("alpha %s out of range 0-1", alpha)}
		}
	}

	return RGBColor{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParseColor is like ParseColor but panics on error. It is meant for
// package-level color constants.
func MustParseColor(text string) RGBColor {
	c, err := ParseColor(text)
	if err != nil {
		panic(err)
	}
	return c
}
