package domain

import "strings"

// FontStyle is a space-joined combination of font style keywords in the
// canonical order bold, italic, underline, strikethrough. The empty style
// means "no style" and resets whatever the editor would otherwise apply.
type FontStyle string

// Font style keywords in canonical order.
const (
	StyleNone          FontStyle = ""
	StyleBold          FontStyle = "bold"
	StyleItalic        FontStyle = "italic"
	StyleUnderline     FontStyle = "underline"
	StyleStrikethrough FontStyle = "strikethrough"
)

var styleKeywords = []FontStyle{StyleBold, StyleItalic, StyleUnderline, StyleStrikethrough}

// validFontStyles holds "" plus every ordered, non-repeating keyword combination.
var validFontStyles = func() map[FontStyle]struct{} {
	styles := make(map[FontStyle]struct{})
	for _, style := range FontStyles() {
		styles[style] = struct{}{}
	}
	return styles
}()

// Validate ensures the style is part of the closed canonical set.
func (s FontStyle) Validate() error {
	if _, ok := validFontStyles[s]; !ok {
		return invalidFontStyleError(string(s))
	}
	return nil
}

// Has reports whether the style includes the given keyword.
func (s FontStyle) Has(keyword FontStyle) bool {
	for _, part := range strings.Fields(string(s)) {
		if FontStyle(part) == keyword {
			return true
		}
	}
	return false
}

// FontStyles returns every valid style, the empty style first.
func FontStyles() []FontStyle {
	out := make([]FontStyle, 0, 1<<len(styleKeywords))
	out = append(out, StyleNone)
	for mask := 1; mask < 1<<len(styleKeywords); mask++ {
		parts := make([]string, 0, len(styleKeywords))
		for i, kw := range styleKeywords {
			if mask&(1<<i) != 0 {
				parts = append(parts, string(kw))
			}
		}
		out = append(out, FontStyle(strings.Join(parts, " ")))
	}
	return out
}
