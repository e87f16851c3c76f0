package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// RandSource is the subset of a random generator the game needs.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type RandSource interface {
	Intn(n int) int
}

// FoodPolicy decides whether food may land on the snake.
type FoodPolicy int

const (
	// AllowOnSnake samples the whole grid, occupied or not.
	AllowOnSnake FoodPolicy = iota
	// AvoidSnake samples only free cells, or any cell if none is free.
	AvoidSnake
)

type FoodManager struct {
	grid   types.Grid
	rng    RandSource
	policy FoodPolicy
}

func NewFoodManager(grid types.Grid, rng RandSource, policy FoodPolicy) *FoodManager {
	return &FoodManager{
		grid:   grid,
		rng:    rng,
		policy: policy,
	}
}

// Spawn draws a new food cell inside the grid.
func (fm *FoodManager) Spawn(snake *entity.Snake) types.Point {
	if fm.policy == AvoidSnake && snake != nil {
		if free := fm.freeCells(snake); len(free) > 0 {
			return free[fm.rng.Intn(len(free))]
		}
	}
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		occupied[p] = struct{}{}
	}
	free := make([]types.Point, 0, max(fm.grid.Cells()-len(occupied), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}
