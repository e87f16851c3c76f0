package types

import "time"

// Board defaults. The window is Width*CellSize by Height*CellSize logical units.
const (
	DefaultWidth  = 20
	DefaultHeight = 20
	CellSize      = 20

	DefaultTickInterval = 100 * time.Millisecond
)

// Point is a single cell on the grid.
type Point struct {
	X, Y int
}

// Add returns p translated by offset.
func (p Point) Add(offset Point) Point {
	return Point{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Manhattan returns the taxicab distance between p and other.
func (p Point) Manhattan(other Point) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is the 20x20 board.
func DefaultGrid() Grid {
	return Grid{Width: DefaultWidth, Height: DefaultHeight}
}

// Contains reports whether p lies in [0,Width) x [0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the starting cell of a new snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells is the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Valid reports whether both dimensions are positive.
func (g Grid) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// Direction is a cardinal heading. The zero value is Up; there is no "none".
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// ToPoint converts a Direction into its unit offset. Y grows downward.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		panic("types: invalid direction")
	}
}

// Opposite returns the heading pointing the other way along the same axis.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// TurnLeft rotates d counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// TurnRight rotates d clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
