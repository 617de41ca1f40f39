package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semtheme/internal/domain"
)

func ptrColor(c domain.Color) *domain.Color         { return &c }
func ptrStyle(s domain.FontStyle) *domain.FontStyle { return &s }

func sampleDoc() *domain.Document {
	doc := &domain.Document{
		Name:                 "Sample",
		SemanticHighlighting: true,
		Colors:               domain.NewColors(),
		SemanticTokenColors:  domain.NewSemanticTokenColors(),
		TokenColors: []domain.TokenRule{
			{Name: "Comment", Scope: domain.Scope{"comment", "punctuation.definition.comment"},
				Settings: domain.TokenSettings{Foreground: ptrColor("#5c5c5c"), FontStyle: ptrStyle("italic")}},
			{Name: "Keyword", Scope: domain.Scope{"keyword"},
				Settings: domain.TokenSettings{Foreground: ptrColor("#C681E1")}},
			{Name: "Static | Function", Scope: domain.Scope{"entity.name.function.member.static"},
				Settings: domain.TokenSettings{FontStyle: ptrStyle("bold italic")}},
		},
	}
	doc.Colors.Set("editor.background", "#1d1d1d")
	doc.Colors.Set("editor.foreground", "#c4c4c4")
	doc.SemanticTokenColors.Set("namespace", domain.BareColorRule("#ccb87a"))
	italic := true
	doc.SemanticTokenColors.Set("typeParameter", domain.SettingsRule(domain.SemanticSettings{Italic: &italic}))
	return doc
}

func TestExpandHex(t *testing.T) {
	cases := map[string]string{
		"#abc":      "#aabbcc",
		"#abcd":     "#aabbcc",
		"#a1b2c3":   "#a1b2c3",
		"#a1b2c3ff": "#a1b2c3",
	}
	for in, want := range cases {
		got, err := expandHex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := expandHex("#12345")
	assert.Error(t, err)
	_, err = expandHex("abc")
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	ratio, err := Contrast("#ffffff", "#000000")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 0.01)

	same, err := Contrast("#1d1d1d", "#1d1d1d")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 0.001)

	_, err = Contrast("#xyz", "#000")
	assert.Error(t, err)
}

func TestSwatches(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	doc := sampleDoc()

	out := Swatches(doc, 80)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Comment")
	assert.Contains(t, plain, "comment, punctuation.definition.comment")

	// #5c5c5c on #1d1d1d is below the readability threshold.
	assert.True(t, strings.HasPrefix(ansi.Strip(lines[0]), lowMarker))
	assert.True(t, strings.HasPrefix(ansi.Strip(lines[1]), " "))

	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 80)
	}
	assert.Contains(t, lines[0], "\x1b[", "styled output expected under a truecolor profile")
}

func TestSwatchesTruncatesScopes(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	doc := sampleDoc()
	doc.TokenColors[0].Scope = domain.Scope{strings.Repeat("very.long.scope ", 10)}

	out := Swatches(doc, 40)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
	assert.Contains(t, out, "…")
}

func TestPaletteBlock(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	out := Palette(sampleDoc())
	assert.Contains(t, out, "editor.background #1d1d1d")
	assert.Contains(t, out, "editor.foreground #c4c4c4")
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleDoc())

	assert.True(t, strings.HasPrefix(md, "# Sample\n"))
	assert.Contains(t, md, "3 token rules, 2 semantic rules.")
	assert.Contains(t, md, "| `editor.background` | `#1d1d1d` |")
	assert.Contains(t, md, "| `namespace` | `#ccb87a` |")
	assert.Contains(t, md, "| `typeParameter` | italic true |")
	assert.Contains(t, md, "| Comment | `#5c5c5c` | italic | 2 |")
	assert.Contains(t, md, `| Static \| Function | - | bold italic | 1 |`)
}

func TestRenderMarkdownPlainFallback(t *testing.T) {
	md := "# Title\n\nsome words that will wrap around"
	out := RenderMarkdown(md, "plain", 12)
	assert.Contains(t, out, "# Title")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 12)
	}
}

func TestRenderMarkdownStyled(t *testing.T) {
	out := RenderMarkdown("# Title\n\nbody", "notty", 40)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}

func TestColorProfile(t *testing.T) {
	p, ok := ColorProfile("truecolor")
	assert.True(t, ok)
	assert.Equal(t, termenv.TrueColor, p)

	p, ok = ColorProfile("none")
	assert.True(t, ok)
	assert.Equal(t, termenv.Ascii, p)

	_, ok = ColorProfile("sparkly")
	assert.False(t, ok)
}

func TestViewerLifecycle(t *testing.T) {
	v := NewViewer("Sample", strings.Repeat("line\n", 50))
	assert.Equal(t, "loading…", v.View())

	model, _ := v.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	v = model.(Viewer)
	view := v.View()
	assert.Contains(t, view, "Sample")
	assert.Contains(t, view, "q quit")

	model, _ = v.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	v = model.(Viewer)
	assert.Equal(t, 60, v.viewport.Width)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCopy(t *testing.T) {
	var got string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		got = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	require.NoError(t, Copy(`{"name":"x"}`))
	assert.Equal(t, `{"name":"x"}`, got)
}
