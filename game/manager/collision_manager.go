package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "unknown"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies the snake's current head. Walls are checked first.
func (cm *CollisionManager) Check(snake *entity.Snake) CollisionType {
	head := snake.Head()
	if cm.isWallCollision(head) {
		return WallCollision
	}
	if cm.isSelfCollision(head, snake) {
		return SelfCollision
	}
	return NoCollision
}

// IsDanger reports whether moving the head onto pos would end the run. The
// tail is skipped because it vacates its cell during the same move.
func (cm *CollisionManager) IsDanger(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return true
	}
	for i := 0; i < len(snake.Body)-1; i++ {
		if snake.Body[i] == pos {
			return true
		}
	}
	return false
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision compares the head against every segment after it.
func (cm *CollisionManager) isSelfCollision(head types.Point, snake *entity.Snake) bool {
	for _, part := range snake.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}
