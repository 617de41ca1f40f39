package palette

import (
	"slices"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Resolve finds a palette by name. Files in dir take precedence over
// built-in palettes of the same name.
func Resolve(name, dir string) (*Palette, error) {
	palettes, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, p := range palettes {
		if p.Name == name {
			return p, nil
		}
	}
	if p, ok := Builtin(name); ok {
		return p, nil
	}

	known := Builtins()
	for _, p := range palettes {
		known = append(known, p.Name)
	}
	return nil, notFoundError(name, Suggest(name, known))
}

// Available lists every palette name reachable from dir, file palettes and
// built-ins merged, sorted and without duplicates.
func Available(dir string) ([]string, error) {
	palettes, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	names := Builtins()
	for _, p := range palettes {
		names = append(names, p.Name)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// Suggest ranks candidates by fuzzy similarity to query.
func Suggest(query string, candidates []string) []string {
	matches := fuzzy.Find(query, candidates)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
