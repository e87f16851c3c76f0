package ai

import (
	"grid-snake/game"
	"grid-snake/game/types"
)

// Rewards for one tick.
const (
	RewardFood    = 1.0
	RewardDeath   = -1.0
	RewardCloser  = 0.1
	RewardFarther = -0.15
)

// Pilot steers a game with a QLearning agent. It implements game.Controller,
// so a game.Runner can drive it alongside keyboard input.
type Pilot struct {
	Agent *QLearning
	// Learn enables Q-table updates after each tick.
	Learn bool

	lastState  State
	lastAction types.Direction
	lastDist   int
	pending    bool
}

func NewPilot(agent *QLearning, learn bool) *Pilot {
	return &Pilot{Agent: agent, Learn: learn}
}

// BeforeTick chooses and applies a heading.
func (p *Pilot) BeforeTick(g *game.Game) {
	if g.IsGameOver() {
		return
	}
	state := Observe(g)
	action := p.Agent.GetAction(state, AllowedMoves(g))
	g.SetDirection(action)

	p.lastState = state
	p.lastAction = action
	p.lastDist = foodDistance(g)
	p.pending = true
}

// AfterTick learns from the transition the last heading produced.
func (p *Pilot) AfterTick(g *game.Game, res game.StepResult) {
	if !p.pending {
		return
	}
	p.pending = false
	if !p.Learn {
		return
	}

	done := g.IsGameOver()
	reward := p.reward(g, res)
	var next State
	if !done {
		next = Observe(g)
	}
	p.Agent.Update(p.lastState, p.lastAction, reward, next, done)
}

func (p *Pilot) reward(g *game.Game, res game.StepResult) float64 {
	switch {
	case g.IsGameOver():
		return RewardDeath
	case res.Ate:
		return RewardFood
	case p.lastDist < 0:
		return 0
	}
	if dist := foodDistance(g); dist < p.lastDist {
		return RewardCloser
	}
	return RewardFarther
}
