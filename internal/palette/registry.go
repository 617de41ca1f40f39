package palette

import (
	"slices"
	"sync"
)

var globalRegistry = &registry{
	palettes: make(map[string]*Palette),
}

type registry struct {
	mu       sync.RWMutex
	palettes map[string]*Palette
}

// Register adds a built-in palette. A later registration under the same
// name replaces the earlier one.
func Register(p *Palette) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	p.Source = SourceBuiltin
	globalRegistry.palettes[p.Name] = p
}

// Builtin returns a registered palette by name.
func Builtin(name string) (*Palette, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	p, ok := globalRegistry.palettes[name]
	return p, ok
}

// Builtins returns the names of all registered palettes in sorted order.
func Builtins() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	names := make([]string, 0, len(globalRegistry.palettes))
	for name := range globalRegistry.palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
