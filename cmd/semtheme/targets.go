package main

import (
	"semtheme/internal/build"
	"semtheme/internal/config"
	"semtheme/internal/debug"
	"semtheme/internal/manifest"
	"semtheme/internal/palette"
)

func loadManifest() (*manifest.Manifest, error) {
	return manifest.LoadOrBuiltins(config.GetPath(config.KeyManifest))
}

// resolveTarget finds a theme by manifest file name or label, then by
// palette name.
func resolveTarget(name string) (build.Target, error) {
	m, err := loadManifest()
	if err != nil {
		return build.Target{}, err
	}
	dir := config.GetPath(config.KeyPalettesDir)

	if entry, ok := m.Find(name); ok {
		targets, err := build.Plan(&manifest.Manifest{Themes: []manifest.Theme{entry}}, dir)
		if err != nil {
			return build.Target{}, err
		}
		debug.Logf("theme %q resolved from manifest to palette %s (%s)", name, targets[0].Palette.Name, targets[0].Palette.Source)
		return targets[0], nil
	}

	p, err := palette.Resolve(name, dir)
	if err != nil {
		return build.Target{}, err
	}
	debug.Logf("theme %q resolved to palette %s (%s)", name, p.Name, p.Source)
	return build.Target{Name: p.Name, Label: p.DisplayName(), Palette: p}, nil
}

func compiler() *build.Builder {
	return build.NewBuilder(nil,
		build.WithStrict(config.GetBool(config.KeyBuildStrict)),
		build.WithIndent(config.GetInt(config.KeyOutputIndent)),
	)
}
