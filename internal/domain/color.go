package domain

import "strings"

// Color is a hex color string such as "#1d1d1d". The 3, 4, 6 and 8 digit
// forms are all accepted; the digit count is never checked.
type Color string

// IsColor reports whether s looks like a color. This is the leading-'#' sniff
// the terse decoders use to tell colors apart from font styles.
func IsColor(s string) bool {
	return strings.HasPrefix(s, "#")
}

// ParseColor normalises and validates an incoming color string.
func ParseColor(raw string) (Color, error) {
	c := Color(strings.TrimSpace(raw))
	if err := c.Validate(); err != nil {
		return "", invalidColorError(raw)
	}
	return c, nil
}

// Validate ensures the color is '#' followed by at least one hex digit.
func (c Color) Validate() error {
	s := string(c)
	if !IsColor(s) || len(s) < 2 {
		return invalidColorError(s)
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return invalidColorError(s)
		}
	}
	return nil
}

// String returns the raw color text.
func (c Color) String() string {
	return string(c)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
