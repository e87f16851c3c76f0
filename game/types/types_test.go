package types

import "testing"

func TestDirectionOffsets(t *testing.T) {
	origin := Point{X: 5, Y: 5}
	expects := map[Direction]Point{
		Up:    {X: 5, Y: 4},
		Down:  {X: 5, Y: 6},
		Left:  {X: 4, Y: 5},
		Right: {X: 6, Y: 5},
	}
	for dir, want := range expects {
		if got := origin.Add(dir.ToPoint()); got != want {
			t.Errorf("%s from %v = %v, expected %v", dir, origin, got, want)
		}
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("double opposite of %s is %s", d, d.Opposite().Opposite())
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("left then right from %s gives %s", d, d.TurnLeft().TurnRight())
		}
		sum := d.ToPoint().Add(d.Opposite().ToPoint())
		if sum != (Point{}) {
			t.Errorf("%s and its opposite do not cancel: %v", d, sum)
		}
	}
	if Up.TurnRight() != Right || Up.TurnLeft() != Left {
		t.Fatalf("unexpected turns from up: right=%s left=%s", Up.TurnRight(), Up.TurnLeft())
	}
}

func TestGridContains(t *testing.T) {
	g := DefaultGrid()
	inside := []Point{{0, 0}, {19, 19}, {10, 10}, {0, 19}}
	outside := []Point{{-1, 0}, {0, -1}, {20, 0}, {0, 20}, {20, 20}}
	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("expected %v inside %dx%d", p, g.Width, g.Height)
		}
	}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("expected %v outside %dx%d", p, g.Width, g.Height)
		}
	}
	if c := g.Center(); c != (Point{X: 10, Y: 10}) {
		t.Fatalf("center = %v", c)
	}
}

func TestManhattan(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 4, Y: -2}
	if d := a.Manhattan(b); d != 7 {
		t.Fatalf("distance = %d, expected 7", d)
	}
}
