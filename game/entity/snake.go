package entity

import "grid-snake/game/types"

// Snake is an ordered run of cells, head first, plus the heading for the next move.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

// NewSnakeFromBody builds a snake from explicit segments, head first.
// The slice is copied.
func NewSnakeFromBody(body []types.Point, dir types.Direction) *Snake {
	if len(body) == 0 {
		panic("entity: snake body must not be empty")
	}
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{Body: b, Direction: dir}
}

// MoveForward shifts the snake one cell along its heading. The length is
// unchanged and no collision checks are made.
func (s *Snake) MoveForward() {
	newHead := s.Head().Add(s.Direction.ToPoint())
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// Grow appends a copy of the tail. The copy is dragged into place by the next move.
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.Tail())
}

func (s *Snake) Head() types.Point {
	if len(s.Body) == 0 {
		panic("entity: head of empty snake")
	}
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	if len(s.Body) == 0 {
		panic("entity: tail of empty snake")
	}
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body for renderers.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
