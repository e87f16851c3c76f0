package view

import (
	"strings"
	"testing"

	"grid-snake/game"
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func TestDefaultWindow(t *testing.T) {
	l := Fixed(types.CellSize)
	w, h := l.Size(types.DefaultGrid())
	if w != 400 || h != 400 {
		t.Fatalf("board = %dx%d, expected 400x400", w, h)
	}
	x, y, cw, ch := l.Rect(types.Point{X: 11, Y: 10})
	if x != 220 || y != 200 || cw != 20 || ch != 20 {
		t.Fatalf("rect = %d,%d %dx%d", x, y, cw, ch)
	}
}

func TestFitCentres(t *testing.T) {
	l := Fit(types.Grid{Width: 10, Height: 5}, 300, 200, 10)
	// avail 280x180 -> min(28, 36) = 28
	if l.CellSize != 28 {
		t.Fatalf("cell = %d", l.CellSize)
	}
	if l.OffsetX != 10 || l.OffsetY != 30 {
		t.Fatalf("offset = %d,%d", l.OffsetX, l.OffsetY)
	}

	tiny := Fit(types.Grid{Width: 100, Height: 100}, 50, 50, 0)
	if tiny.CellSize != 1 {
		t.Fatalf("tiny cell = %d", tiny.CellSize)
	}
}

func TestCaptureCopiesState(t *testing.T) {
	snake := entity.NewSnake(types.Point{X: 19, Y: 3}, types.Right)
	g, err := game.NewGame(game.Options{Snake: snake, Rand: zeroSource{}})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetFood(types.Point{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}

	s := Capture(g)
	s.Body[0] = types.Point{}
	if snake.Head() != (types.Point{X: 19, Y: 3}) {
		t.Fatal("scene body aliases the snake")
	}
	if !s.HasFood || s.Food != (types.Point{X: 1, Y: 1}) || s.Over {
		t.Fatalf("scene = %+v", s)
	}

	g.Tick()
	over := Capture(g)
	if !over.Over || !strings.Contains(over.Status(), "wall") {
		t.Fatalf("status = %q", over.Status())
	}
}
