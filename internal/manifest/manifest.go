// Package manifest reads the theme list from an editor extension manifest
// (package.json).
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/tidwall/gjson"

	"semtheme/internal/palette"
)

// DefaultUITheme is the base theme used for entries synthesized from
// built-in palettes.
const DefaultUITheme = "vs-dark"

// Theme is one contributes.themes entry.
type Theme struct {
	Label   string
	UITheme string
	Path    string
}

// FileName is the base of Path without extension; it names both the output
// file and the palette to load: "./themes/lyth-dark.json" is "lyth-dark".
func (t Theme) FileName() string {
	base := path.Base(strings.ReplaceAll(t.Path, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// Manifest is the subset of package.json the build needs.
type Manifest struct {
	Name    string
	Version string
	Themes  []Theme
	// Source is the file the manifest was read from; empty when synthesized.
	Source string
}

// Load reads and parses a manifest file.
func Load(file string) (*Manifest, error) {
	//nolint:gosec // G304: manifest path comes from configuration
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFoundError(file)
	}
	if err != nil {
		return nil, parseError(file, err.Error(), err)
	}
	return Parse(file, data)
}

// Parse decodes manifest JSON. Entries without a path are rejected; a
// missing label falls back to the file name.
func Parse(source string, data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, parseError(source, "invalid JSON", nil)
	}
	doc := gjson.ParseBytes(data)

	m := &Manifest{
		Name:    doc.Get("name").String(),
		Version: doc.Get("version").String(),
		Source:  source,
	}

	themes := doc.Get("contributes.themes")
	if themes.Exists() && !themes.IsArray() {
		return nil, parseError(source, "contributes.themes must be an array", nil)
	}

	var entryErr error
	index := 0
	themes.ForEach(func(_, value gjson.Result) bool {
		t := Theme{
			Label:   value.Get("label").String(),
			UITheme: value.Get("uiTheme").String(),
			Path:    value.Get("path").String(),
		}
		if strings.TrimSpace(t.Path) == "" {
			entryErr = parseError(source, fmt.Sprintf("contributes.themes[%d] has no path", index), nil)
			return false
		}
		if t.Label == "" {
			t.Label = t.FileName()
		}
		m.Themes = append(m.Themes, t)
		index++
		return true
	})
	if entryErr != nil {
		return nil, entryErr
	}
	return m, nil
}

// Builtins synthesizes a manifest with one entry per built-in palette.
func Builtins() *Manifest {
	m := &Manifest{Name: "semtheme"}
	for _, name := range palette.Builtins() {
		p, _ := palette.Builtin(name)
		m.Themes = append(m.Themes, Theme{
			Label:   p.DisplayName(),
			UITheme: DefaultUITheme,
			Path:    "./themes/" + name + ".json",
		})
	}
	return m
}

// LoadOrBuiltins reads the manifest at file, falling back to Builtins when
// the file does not exist.
func LoadOrBuiltins(file string) (*Manifest, error) {
	m, err := Load(file)
	if isNotFound(err) {
		return Builtins(), nil
	}
	return m, err
}

// Find returns the entry whose file name or label matches name.
func (m *Manifest) Find(name string) (Theme, bool) {
	for _, t := range m.Themes {
		if t.FileName() == name || strings.EqualFold(t.Label, name) {
			return t, true
		}
	}
	return Theme{}, false
}
