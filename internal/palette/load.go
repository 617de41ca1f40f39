package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"semtheme/internal/domain"
)

// LabelKey is the reserved mapping key holding a palette's display label.
const LabelKey = "$label"

// Pattern matches palette files below the palettes directory.
const Pattern = "**/*.{yaml,yml}"

// Parse decodes a palette file. The document must be a flat mapping of role
// names to colors; role order is kept.
func Parse(name, source string, data []byte) (*Palette, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, parseError(source, err)
	}

	p := New(name)
	p.Source = source

	node := &root
	if node.Kind == 0 {
		return p, nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return p, nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, parseError(source, fmt.Errorf("line %d: expected a mapping of roles to colors", node.Line))
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if valueNode.Kind != yaml.ScalarNode {
			return nil, parseError(source, fmt.Errorf("line %d: %q must be a string", valueNode.Line, keyNode.Value))
		}
		if keyNode.Value == LabelKey {
			p.Label = valueNode.Value
			continue
		}
		if p.Has(keyNode.Value) {
			return nil, parseError(source, fmt.Errorf("line %d: role %q repeated", keyNode.Line, keyNode.Value))
		}

		c, err := domain.ParseColor(valueNode.Value)
		if err != nil {
			return nil, roleError(source, keyNode.Value, err)
		}
		p.Set(keyNode.Value, c)
	}
	return p, nil
}

// Load reads a palette file. The palette is named after the file without
// its extension.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, parseError(path, err)
	}
	return Parse(nameFromPath(path), path, data)
}

// Discover lists palette files below dir in lexical order. A missing
// directory yields no files.
func Discover(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	matches, err := doublestar.Glob(os.DirFS(dir), Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, parseError(dir, err)
	}
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	slices.Sort(paths)
	return paths, nil
}

// LoadDir loads every palette found below dir. Two files resolving to the
// same palette name are an error.
func LoadDir(dir string) ([]*Palette, error) {
	paths, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]string, len(paths))
	palettes := make([]*Palette, 0, len(paths))
	for _, path := range paths {
		name := nameFromPath(path)
		if prev, ok := seen[name]; ok {
			return nil, duplicateError(name, prev, path)
		}
		seen[name] = path

		p, err := Load(path)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}

// Encode writes the palette back out as YAML, label first.
func Encode(p *Palette) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	if p.Label != "" {
		root.Content = append(root.Content, scalar(LabelKey), scalar(p.Label))
	}
	for _, role := range p.Roles() {
		root.Content = append(root.Content, scalar(role), scalar(string(p.Get(role))))
	}
	return yaml.Marshal(root)
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
