package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

var (
	ErrInvalidGrid = errors.New("grid dimensions must be positive")
	ErrOutOfBounds = errors.New("cell outside grid")
)

// Options configures a new Game. The zero value plays on the 20x20 board.
type Options struct {
	Grid types.Grid
	// Snake overrides the default single-cell snake at the grid centre heading right.
	Snake *entity.Snake
	// Rand feeds food placement. Nil uses a time-seeded generator.
	Rand       manager.RandSource
	FoodPolicy manager.FoodPolicy
}

// StepResult reports what one Tick did.
type StepResult struct {
	Ate       bool
	Respawned bool
	Outcome   manager.CollisionType
}

// Game is one run of the simulation. It is not safe for concurrent use.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	snake        *entity.Snake
	food         types.Point
	hasFood      bool
	outcome      manager.CollisionType
	steps        int
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

func NewGame(opts Options) (*Game, error) {
	grid := opts.Grid
	if grid == (types.Grid{}) {
		grid = types.DefaultGrid()
	}
	if !grid.Valid() {
		return nil, fmt.Errorf("new game %dx%d: %w", grid.Width, grid.Height, ErrInvalidGrid)
	}

	snake := opts.Snake
	if snake == nil {
		snake = entity.NewSnake(grid.Center(), types.Right)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	return &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		StartTime:    time.Now(),
		snake:        snake,
		outcome:      manager.NoCollision,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, rng, opts.FoodPolicy),
	}, nil
}

// SetDirection overwrites the heading. The last call before a Tick wins.
func (g *Game) SetDirection(dir types.Direction) {
	g.snake.Direction = dir
}

// Tick advances the game by one step.
func (g *Game) Tick() StepResult {
	if g.IsGameOver() {
		return StepResult{Outcome: g.outcome}
	}

	g.steps++
	g.snake.MoveForward()

	if collision := g.collisionMgr.Check(g.snake); collision != manager.NoCollision {
		g.outcome = collision
		log.Printf("game %s over after %d ticks: %s collision at %v, length %d",
			g.UUID, g.steps, collision, g.snake.Head(), g.snake.Len())
		return StepResult{Outcome: collision}
	}

	var res StepResult
	if g.hasFood && g.snake.Head() == g.food {
		g.snake.Grow()
		g.hasFood = false
		res.Ate = true
	}

	if !g.hasFood {
		g.food = g.foodMgr.Spawn(g.snake)
		g.hasFood = true
		res.Respawned = true
	}

	return res
}

func (g *Game) IsGameOver() bool {
	return g.outcome != manager.NoCollision
}

// Outcome is NoCollision while running, otherwise the collision that ended the run.
func (g *Game) Outcome() manager.CollisionType {
	return g.outcome
}

// Food returns the current food cell, if one is placed.
func (g *Game) Food() (types.Point, bool) {
	return g.food, g.hasFood
}

// SetFood places food explicitly.
func (g *Game) SetFood(p types.Point) error {
	if !g.Grid.Contains(p) {
		return fmt.Errorf("set food %v: %w", p, ErrOutOfBounds)
	}
	g.food = p
	g.hasFood = true
	return nil
}

// GetSnake exposes the snake read-only by convention; drivers must not mutate it.
func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

// Steps is the number of ticks that moved the snake.
func (g *Game) Steps() int {
	return g.steps
}

// ElapsedTime returns the wall-clock age of the run.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}

// IsDanger reports whether the head moving onto p would end the run.
func (g *Game) IsDanger(p types.Point) bool {
	return g.collisionMgr.IsDanger(p, g.snake)
}
