package input

import (
	"testing"

	"grid-snake/game/types"
)

type steer struct {
	dir   types.Direction
	calls int
}

func (s *steer) SetDirection(d types.Direction) {
	s.dir = d
	s.calls++
}

func TestDefaultBindingsCoverEveryDirection(t *testing.T) {
	b := DefaultBindings()
	groups := [][4]string{
		{"up", "right", "down", "left"},
		{"w", "d", "s", "a"},
		{"k", "l", "j", "h"},
	}
	for _, g := range groups {
		for i, sym := range g {
			dir, ok := b.Lookup(sym)
			if !ok || dir != types.Directions[i] {
				t.Errorf("%q -> %s ok=%v, expected %s", sym, dir, ok, types.Directions[i])
			}
		}
	}
}

func TestUnknownSymbolKeepsHeading(t *testing.T) {
	b := DefaultBindings()
	if got := b.Resolve("space", types.Left); got != types.Left {
		t.Fatalf("resolve unknown = %s, expected left", got)
	}
	if got := b.Resolve("UP", types.Left); got != types.Up {
		t.Fatalf("resolve UP = %s, expected up", got)
	}

	s := &steer{dir: types.Right}
	if b.Apply(s, "q") || s.calls != 0 || s.dir != types.Right {
		t.Fatalf("unknown symbol steered: %+v", s)
	}
	if !b.Apply(s, "j") || s.dir != types.Down {
		t.Fatalf("j did not steer down: %+v", s)
	}
}
