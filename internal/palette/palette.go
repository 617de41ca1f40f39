// Package palette loads and registers named color palettes. A palette maps
// semantic role names such as "keyword" or "comment" to colors.
package palette

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"semtheme/internal/domain"
)

// SourceBuiltin marks palettes compiled into the binary.
const SourceBuiltin = "builtin"

// Palette is a named set of role colors in declaration order.
type Palette struct {
	Name   string
	Label  string
	Source string
	roles  *orderedmap.OrderedMap[string, domain.Color]
}

// New returns an empty palette. The zero Palette is usable as well.
func New(name string) *Palette {
	return &Palette{Name: name, roles: orderedmap.New[string, domain.Color]()}
}

// Set assigns a role color. Re-setting a role keeps its position.
func (p *Palette) Set(role string, c domain.Color) {
	if p.roles == nil {
		p.roles = orderedmap.New[string, domain.Color]()
	}
	p.roles.Set(role, c)
}

// Lookup returns the color bound to role.
func (p *Palette) Lookup(role string) (domain.Color, bool) {
	if p.roles == nil {
		return "", false
	}
	return p.roles.Get(role)
}

// Get returns the color bound to role, or "" when absent.
func (p *Palette) Get(role string) domain.Color {
	c, _ := p.Lookup(role)
	return c
}

// Has reports whether role is defined.
func (p *Palette) Has(role string) bool {
	_, ok := p.Lookup(role)
	return ok
}

// Roles returns role names in declaration order.
func (p *Palette) Roles() []string {
	if p.roles == nil {
		return nil
	}
	names := make([]string, 0, p.roles.Len())
	for pair := p.roles.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len returns the number of roles.
func (p *Palette) Len() int {
	if p.roles == nil {
		return 0
	}
	return p.roles.Len()
}

// DisplayName is the label when set, the name otherwise.
func (p *Palette) DisplayName() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}
