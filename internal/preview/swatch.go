// Package preview renders compiled themes for the terminal.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"semtheme/internal/domain"
)

const (
	maxNameWidth = 32
	lowMarker    = "!"
)

// Swatches renders one line per token rule: the rule name in its own color
// and style on the theme background, then its scopes cut to fit width.
// Rules whose foreground reads poorly on the background are marked with "!".
func Swatches(doc *domain.Document, width int) string {
	bg, fg := baseColors(doc)

	nameWidth := 0
	for _, rule := range doc.TokenColors {
		nameWidth = max(nameWidth, ansi.StringWidth(rule.Name))
	}
	nameWidth = min(nameWidth, maxNameWidth)

	var b strings.Builder
	for i, rule := range doc.TokenColors {
		if i > 0 {
			b.WriteByte('\n')
		}
		color := fg
		if rule.Settings.Foreground != nil && *rule.Settings.Foreground != "" {
			color = *rule.Settings.Foreground
		}

		marker := " "
		if ratio, err := Contrast(color, bg); err == nil && ratio < MinContrast {
			marker = lowMarker
		}

		name := ansi.Truncate(rule.Name, nameWidth, "…")
		pad := strings.Repeat(" ", nameWidth-ansi.StringWidth(name))
		style := ruleStyle(color, bg, rule.Settings.FontStyle)

		line := marker + " " + style.Render(name) + pad
		if rest := width - ansi.StringWidth(line) - 2; rest > 0 {
			scopes := strings.Join(rule.Scope, ", ")
			line += "  " + truncate.StringWithTail(scopes, uint(rest), "…")
		}
		b.WriteString(line)
	}
	return b.String()
}

// Palette renders the UI color block as labelled blocks.
func Palette(doc *domain.Document) string {
	if doc.Colors == nil {
		return ""
	}
	var rows []string
	for pair := doc.Colors.Oldest(); pair != nil; pair = pair.Next() {
		block := lipgloss.NewStyle().Background(lipgloss.Color(string(pair.Value))).Render("    ")
		rows = append(rows, block+" "+pair.Key+" "+string(pair.Value))
	}
	return strings.Join(rows, "\n")
}

func ruleStyle(fg, bg domain.Color, fs *domain.FontStyle) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(fg))).
		Background(lipgloss.Color(string(bg)))
	if fs == nil {
		return style
	}
	return style.
		Bold(fs.Has(domain.StyleBold)).
		Italic(fs.Has(domain.StyleItalic)).
		Underline(fs.Has(domain.StyleUnderline)).
		Strikethrough(fs.Has(domain.StyleStrikethrough))
}

func baseColors(doc *domain.Document) (bg, fg domain.Color) {
	bg, fg = "#000000", "#ffffff"
	if doc.Colors == nil {
		return bg, fg
	}
	if c, ok := doc.Colors.Get("editor.background"); ok {
		bg = c
	}
	if c, ok := doc.Colors.Get("editor.foreground"); ok {
		fg = c
	}
	return bg, fg
}

// ColorProfile maps a --color flag value to a terminal profile. Unknown
// names keep the detected profile.
func ColorProfile(name string) (termenv.Profile, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "truecolor", "24bit":
		return termenv.TrueColor, true
	case "256":
		return termenv.ANSI256, true
	case "16", "ansi":
		return termenv.ANSI, true
	case "none", "never", "ascii":
		return termenv.Ascii, true
	default:
		return lipgloss.ColorProfile(), false
	}
}
