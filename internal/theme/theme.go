// Package theme assembles a complete editor theme document from a palette
// and the fixed rule tables.
package theme

import (
	"semtheme/internal/domain"
	"semtheme/internal/terse"
)

// Ref names a palette role inside the fixed tables. It is replaced by the
// role's color before the tables are decoded.
type Ref string

// Palette is the role lookup the assembler needs.
type Palette interface {
	Lookup(role string) (domain.Color, bool)
}

// Assemble builds the theme document for a palette. Every role the tables
// reference must be present; otherwise nothing is built.
func Assemble(name string, p Palette) (*domain.Document, error) {
	if missing := MissingRoles(p); len(missing) > 0 {
		return nil, missingRolesError(missing)
	}

	colors := domain.NewColors()
	for _, b := range uiColors {
		colors.Set(b.key, resolve(b.value, p).(domain.Color))
	}

	table := terse.NewSemanticTable()
	for _, e := range semanticTable {
		table.Set(e.Scope, resolve(e.Value, p))
	}
	semantic, err := terse.SemanticTokens(table)
	if err != nil {
		return nil, err
	}

	defs := make([]terse.Literal, len(tokenTable))
	for i, def := range tokenTable {
		defs[i] = resolve(def, p).(terse.Literal)
	}
	tokens, err := terse.Tokens(defs)
	if err != nil {
		return nil, err
	}

	return &domain.Document{
		Name:                 name,
		SemanticHighlighting: true,
		Colors:               colors,
		SemanticTokenColors:  semantic,
		TokenColors:          tokens,
	}, nil
}

// RequiredRoles lists every palette role the fixed tables reference, in
// first-use order.
func RequiredRoles() []string {
	var roles []string
	seen := make(map[string]bool)
	visit := func(v any) {
		for _, r := range refs(v) {
			if !seen[string(r)] {
				seen[string(r)] = true
				roles = append(roles, string(r))
			}
		}
	}
	for _, b := range uiColors {
		visit(b.value)
	}
	for _, e := range semanticTable {
		visit(e.Value)
	}
	for _, def := range tokenTable {
		visit(def)
	}
	return roles
}

// MissingRoles returns the required roles the palette does not define.
func MissingRoles(p Palette) []string {
	var missing []string
	for _, role := range RequiredRoles() {
		if _, ok := p.Lookup(role); !ok {
			missing = append(missing, role)
		}
	}
	return missing
}

func refs(v any) []Ref {
	switch x := v.(type) {
	case Ref:
		return []Ref{x}
	case terse.Literal:
		var out []Ref
		for _, item := range x {
			out = append(out, refs(item)...)
		}
		return out
	default:
		return nil
	}
}

// resolve replaces palette references with colors. Callers check for
// missing roles first.
func resolve(v any, p Palette) any {
	switch x := v.(type) {
	case Ref:
		c, _ := p.Lookup(string(x))
		return c
	case terse.Literal:
		out := make(terse.Literal, len(x))
		for i, item := range x {
			out[i] = resolve(item, p)
		}
		return out
	default:
		return v
	}
}
