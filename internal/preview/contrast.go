package preview

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"semtheme/internal/domain"
)

// MinContrast is the ratio below which a rule is flagged as hard to read.
const MinContrast = 3.0

// ToColorful converts a theme color. Alpha digits are dropped and the short
// forms are expanded.
func ToColorful(c domain.Color) (colorful.Color, error) {
	hex, err := expandHex(string(c))
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Hex(hex)
}

// Contrast returns the WCAG contrast ratio between two colors, from 1 to 21.
func Contrast(fg, bg domain.Color) (float64, error) {
	a, err := ToColorful(fg)
	if err != nil {
		return 0, err
	}
	b, err := ToColorful(bg)
	if err != nil {
		return 0, err
	}
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// expandHex normalises #rgb, #rgba and #rrggbbaa to #rrggbb.
func expandHex(s string) (string, error) {
	if !strings.HasPrefix(s, "#") {
		return "", fmt.Errorf("not a hex color: %q", s)
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		b.WriteByte('#')
		for _, r := range digits[:3] {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String(), nil
	case 6:
		return s, nil
	case 8:
		return "#" + digits[:6], nil
	default:
		return "", fmt.Errorf("unsupported hex color length: %q", s)
	}
}
