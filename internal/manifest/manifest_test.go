package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "semtheme/internal/errors"
)

const sample = `{
  "name": "lyth-theme",
  "version": "1.2.0",
  "contributes": {
    "themes": [
      {"label": "Lyth Dark", "uiTheme": "vs-dark", "path": "./themes/lyth-dark.json"},
      {"uiTheme": "vs", "path": "themes/lyth-light.json"}
    ]
  }
}`

func TestParse(t *testing.T) {
	m, err := Parse("package.json", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "lyth-theme", m.Name)
	assert.Equal(t, "1.2.0", m.Version)
	require.Len(t, m.Themes, 2)

	assert.Equal(t, "Lyth Dark", m.Themes[0].Label)
	assert.Equal(t, "vs-dark", m.Themes[0].UITheme)
	assert.Equal(t, "lyth-dark", m.Themes[0].FileName())

	assert.Equal(t, "lyth-light", m.Themes[1].Label, "label falls back to file name")
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := Parse("package.json", []byte(`{"name":`))
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeParseFailed))

	_, err = Parse("package.json", []byte(`{"contributes":{"themes":{"path":"x"}}}`))
	require.Error(t, err)

	_, err = Parse("package.json", []byte(`{"contributes":{"themes":[{"label":"No Path"}]}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "themes[0]")
}

func TestParseWithoutThemes(t *testing.T) {
	m, err := Parse("package.json", []byte(`{"name":"empty"}`))
	require.NoError(t, err)
	assert.Empty(t, m.Themes)
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"./themes/lyth-dark.json": "lyth-dark",
		"lyth-dark.json":          "lyth-dark",
		`themes\win.json`:         "win",
		"noext":                   "noext",
	}
	for p, want := range cases {
		assert.Equal(t, want, Theme{Path: p}.FileName(), p)
	}
}

func TestLoadOrBuiltins(t *testing.T) {
	dir := t.TempDir()

	m, err := LoadOrBuiltins(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Empty(t, m.Source)
	theme, ok := m.Find("lyth-dark")
	require.True(t, ok)
	assert.Equal(t, "Lyth Dark", theme.Label)
	assert.Equal(t, DefaultUITheme, theme.UITheme)

	file := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o644))
	m, err = LoadOrBuiltins(file)
	require.NoError(t, err)
	assert.Equal(t, file, m.Source)
	assert.Len(t, m.Themes, 2)
}

func TestLoadReportsMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeNotFound))
}

func TestFind(t *testing.T) {
	m, err := Parse("package.json", []byte(sample))
	require.NoError(t, err)

	_, ok := m.Find("lyth dark")
	assert.True(t, ok, "label match is case-insensitive")
	_, ok = m.Find("lyth-light")
	assert.True(t, ok)
	_, ok = m.Find("missing")
	assert.False(t, ok)
}
