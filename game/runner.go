package game

import (
	"log"
	"time"
)

// StepMode selects how frame time turns into ticks.
type StepMode int

const (
	// FixedStep runs one tick per elapsed interval, catching up after slow frames.
	FixedStep StepMode = iota
	// PerFrame runs one tick per Advance call regardless of elapsed time.
	PerFrame
)

// Controller steers a game from inside the loop, e.g. an autopilot.
type Controller interface {
	BeforeTick(g *Game)
	AfterTick(g *Game, res StepResult)
}

// Runner drives a Game from a render loop.
type Runner struct {
	Game       *Game
	Interval   time.Duration
	Mode       StepMode
	Controller Controller
	OnStep     func(StepResult)

	accumulator time.Duration
}

func NewRunner(g *Game, interval time.Duration, mode StepMode) *Runner {
	return &Runner{
		Game:     g,
		Interval: interval,
		Mode:     mode,
	}
}

// Advance feeds dt of elapsed frame time and returns the number of ticks run.
func (r *Runner) Advance(dt time.Duration) int {
	if r.Game.IsGameOver() {
		return 0
	}

	if r.Mode == PerFrame || r.Interval <= 0 {
		r.step()
		return 1
	}

	r.accumulator += dt
	ticks := 0
	for r.accumulator >= r.Interval && !r.Game.IsGameOver() {
		r.step()
		r.accumulator -= r.Interval
		ticks++
	}
	if r.Game.IsGameOver() {
		r.accumulator = 0
	}
	if ticks > 1 {
		log.Printf("runner caught up %d ticks after a %v frame", ticks, dt)
	}
	return ticks
}

// Reset swaps in a fresh game and clears the accumulator.
func (r *Runner) Reset(g *Game) {
	r.Game = g
	r.accumulator = 0
}

func (r *Runner) step() {
	if r.Controller != nil {
		r.Controller.BeforeTick(r.Game)
	}
	res := r.Game.Tick()
	if r.Controller != nil {
		r.Controller.AfterTick(r.Game, res)
	}
	if r.OnStep != nil {
		r.OnStep(res)
	}
}
