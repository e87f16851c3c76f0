// Package view holds the toolkit-independent part of rendering: a snapshot of
// what to draw and the cell-to-pixel layout.
package view

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// Scene is everything a renderer needs from one frame.
type Scene struct {
	Grid    types.Grid
	Body    []types.Point
	Heading types.Direction
	Food    types.Point
	HasFood bool
	Over    bool
	Outcome manager.CollisionType
	Steps   int
}

// Capture copies the drawable state of g.
func Capture(g *game.Game) Scene {
	snake := g.GetSnake()
	food, hasFood := g.Food()
	return Scene{
		Grid:    g.Grid,
		Body:    snake.Segments(),
		Heading: snake.Direction,
		Food:    food,
		HasFood: hasFood,
		Over:    g.IsGameOver(),
		Outcome: g.Outcome(),
		Steps:   g.Steps(),
	}
}

// Status is the one-line caption shown under or over the board.
func (s Scene) Status() string {
	if s.Over {
		return fmt.Sprintf("Game Over (%s) - length %d - press R to restart", s.Outcome, len(s.Body))
	}
	return fmt.Sprintf("Length: %d  Ticks: %d", len(s.Body), s.Steps)
}

// Layout places grid cells on a screen.
type Layout struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

// Fixed lays the grid out at a fixed cell size from the top-left corner.
func Fixed(cellSize int) Layout {
	return Layout{CellSize: cellSize}
}

// Fit picks the largest square cell that fits the grid inside the screen
// minus padding on every side, and centres the board.
func Fit(grid types.Grid, screenW, screenH, padding int) Layout {
	availW := screenW - 2*padding
	availH := screenH - 2*padding
	cell := min(availW/grid.Width, availH/grid.Height)
	if cell < 1 {
		cell = 1
	}
	return Layout{
		CellSize: cell,
		OffsetX:  (screenW - cell*grid.Width) / 2,
		OffsetY:  (screenH - cell*grid.Height) / 2,
	}
}

// Rect returns the pixel rectangle of cell p.
func (l Layout) Rect(p types.Point) (x, y, w, h int) {
	return l.OffsetX + p.X*l.CellSize, l.OffsetY + p.Y*l.CellSize, l.CellSize, l.CellSize
}

// Size returns the board's pixel size.
func (l Layout) Size(grid types.Grid) (w, h int) {
	return grid.Width * l.CellSize, grid.Height * l.CellSize
}
