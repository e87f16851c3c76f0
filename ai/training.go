package ai

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// Trainer plays headless episodes, each on a fresh Game.
type Trainer struct {
	Grid       types.Grid
	FoodPolicy manager.FoodPolicy
	MaxSteps   int
	Agent      *QLearning
	Stats      *Stats

	rng Rand
}

func NewTrainer(grid types.Grid, policy manager.FoodPolicy, maxSteps int, rng Rand) *Trainer {
	return &Trainer{
		Grid:       grid,
		FoodPolicy: policy,
		MaxSteps:   maxSteps,
		Agent:      NewQLearning(rng),
		Stats:      NewStats(),
		rng:        rng,
	}
}

// RunEpisode plays until game over or MaxSteps ticks.
func (t *Trainer) RunEpisode() (EpisodeResult, error) {
	g, err := game.NewGame(game.Options{Grid: t.Grid, Rand: t.rng, FoodPolicy: t.FoodPolicy})
	if err != nil {
		return EpisodeResult{}, fmt.Errorf("episode %d: %w", t.Agent.TrainingEpisode, err)
	}

	runner := game.NewRunner(g, 0, game.PerFrame)
	runner.Controller = NewPilot(t.Agent, true)
	for g.Steps() < t.MaxSteps && !g.IsGameOver() {
		runner.Advance(0)
	}

	t.Agent.IncrementEpisode()
	res := EpisodeResult{
		Length:  g.GetSnake().Len(),
		Steps:   g.Steps(),
		Outcome: g.Outcome(),
	}
	t.Stats.Add(res, t.Agent.Epsilon)
	return res, nil
}

// Train runs n episodes back to back.
func (t *Trainer) Train(n int) error {
	for i := 0; i < n; i++ {
		if _, err := t.RunEpisode(); err != nil {
			return err
		}
	}
	return nil
}
