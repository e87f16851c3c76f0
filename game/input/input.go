// Package input maps key symbols from any front end onto snake headings.
package input

import (
	"strings"

	"grid-snake/game/types"
)

// Steerable is anything that accepts a heading, usually *game.Game.
type Steerable interface {
	SetDirection(types.Direction)
}

// Bindings maps lower-case key symbols to headings.
type Bindings map[string]types.Direction

// DefaultBindings accepts arrows, WASD and vi keys.
func DefaultBindings() Bindings {
	return Bindings{
		"up": types.Up, "down": types.Down, "left": types.Left, "right": types.Right,
		"w": types.Up, "s": types.Down, "a": types.Left, "d": types.Right,
		"k": types.Up, "j": types.Down, "h": types.Left, "l": types.Right,
	}
}

// Lookup resolves a symbol. Case is ignored.
func (b Bindings) Lookup(symbol string) (types.Direction, bool) {
	dir, ok := b[strings.ToLower(symbol)]
	return dir, ok
}

// Resolve returns the heading for symbol, or current if the symbol is unbound.
func (b Bindings) Resolve(symbol string, current types.Direction) types.Direction {
	if dir, ok := b.Lookup(symbol); ok {
		return dir
	}
	return current
}

// Apply steers s when symbol is bound and reports whether it did.
// Unbound symbols leave the previous heading in place.
func (b Bindings) Apply(s Steerable, symbol string) bool {
	dir, ok := b.Lookup(symbol)
	if !ok {
		return false
	}
	s.SetDirection(dir)
	return true
}
