package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"semtheme/internal/domain"
)

// Markdown describes a document as a Markdown report.
func Markdown(doc *domain.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Name)
	fmt.Fprintf(&b, "%d token rules, %d semantic rules.\n\n", len(doc.TokenColors), lenSemantic(doc))

	if doc.Colors != nil && doc.Colors.Len() > 0 {
		b.WriteString("## Colors\n\n| Key | Color |\n|---|---|\n")
		for pair := doc.Colors.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(&b, "| `%s` | `%s` |\n", pair.Key, pair.Value)
		}
		b.WriteString("\n")
	}

	if lenSemantic(doc) > 0 {
		b.WriteString("## Semantic tokens\n\n| Selector | Settings |\n|---|---|\n")
		for pair := doc.SemanticTokenColors.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(&b, "| `%s` | %s |\n", pair.Key, describeSemantic(pair.Value))
		}
		b.WriteString("\n")
	}

	if len(doc.TokenColors) > 0 {
		b.WriteString("## Token rules\n\n| Name | Foreground | Style | Scopes |\n|---|---|---|---|\n")
		for _, rule := range doc.TokenColors {
			fmt.Fprintf(&b, "| %s | %s | %s | %d |\n",
				escapeCell(rule.Name),
				optional(rule.Settings.Foreground),
				optionalStyle(rule.Settings.FontStyle),
				len(rule.Scope))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderMarkdown renders Markdown with a glamour standard style. The
// "plain" style, or any renderer failure, falls back to word wrapping.
func RenderMarkdown(md, format string, width int) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback(md)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback(md)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fallback(md)
	}
	return strings.TrimSpace(out)
}

func lenSemantic(doc *domain.Document) int {
	if doc.SemanticTokenColors == nil {
		return 0
	}
	return doc.SemanticTokenColors.Len()
}

func describeSemantic(rule domain.SemanticRule) string {
	if c, ok := rule.Color(); ok {
		return "`" + string(c) + "`"
	}
	s, _ := rule.Settings()
	var parts []string
	if s.Foreground != nil {
		parts = append(parts, "foreground "+optional(s.Foreground))
	}
	if s.FontStyle != nil {
		parts = append(parts, "fontStyle "+optionalStyle(s.FontStyle))
	}
	for _, flag := range []struct {
		name string
		v    *bool
	}{{"bold", s.Bold}, {"italic", s.Italic}, {"underline", s.Underline}} {
		if flag.v != nil {
			parts = append(parts, fmt.Sprintf("%s %t", flag.name, *flag.v))
		}
	}
	return strings.Join(parts, ", ")
}

func optional(c *domain.Color) string {
	if c == nil {
		return "-"
	}
	if *c == "" {
		return `""`
	}
	return "`" + string(*c) + "`"
}

func optionalStyle(fs *domain.FontStyle) string {
	if fs == nil {
		return "-"
	}
	if *fs == "" {
		return "reset"
	}
	return string(*fs)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
