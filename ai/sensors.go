package ai

import (
	"grid-snake/game"
	"grid-snake/game/types"
)

// Observe reads the agent's view of g.
func Observe(g *game.Game) State {
	snake := g.GetSnake()
	head := snake.Head()

	var s State
	s.Heading = snake.Direction
	if food, ok := g.Food(); ok {
		s.FoodDir = [2]int{sign(food.X - head.X), sign(food.Y - head.Y)}
	}
	for i, d := range types.Directions {
		s.Dangers[i] = g.IsDanger(head.Add(d.ToPoint()))
	}
	return s
}

// AllowedMoves drops the reversal once the snake has a neck to run into.
func AllowedMoves(g *game.Game) []types.Direction {
	snake := g.GetSnake()
	if snake.Len() < 2 {
		return types.Directions[:]
	}
	back := snake.Direction.Opposite()
	moves := make([]types.Direction, 0, 3)
	for _, d := range types.Directions {
		if d != back {
			moves = append(moves, d)
		}
	}
	return moves
}

// foodDistance is the Manhattan distance from head to food, or -1 without food.
func foodDistance(g *game.Game) int {
	food, ok := g.Food()
	if !ok {
		return -1
	}
	return g.GetSnake().Head().Manhattan(food)
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
