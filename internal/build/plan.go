package build

import (
	"semtheme/internal/manifest"
	"semtheme/internal/palette"
)

// Target is one theme to compile.
type Target struct {
	// Name is the output file name without extension.
	Name string
	// Label becomes the document's name.
	Label   string
	Palette *palette.Palette
}

// Plan resolves one target per manifest entry. Each entry's palette is
// looked up by file name in palettesDir, then among the built-ins.
func Plan(m *manifest.Manifest, palettesDir string) ([]Target, error) {
	targets := make([]Target, 0, len(m.Themes))
	for _, t := range m.Themes {
		name := t.FileName()
		p, err := palette.Resolve(name, palettesDir)
		if err != nil {
			return nil, paletteError(name, err)
		}
		targets = append(targets, Target{Name: name, Label: t.Label, Palette: p})
	}
	return targets, nil
}

// Filter keeps the targets whose name is listed. An empty list keeps all.
func Filter(targets []Target, names []string) []Target {
	if len(names) == 0 {
		return targets
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	out := targets[:0:0]
	for _, t := range targets {
		if want[t.Name] {
			out = append(out, t)
		}
	}
	return out
}
