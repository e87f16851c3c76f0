// Package app wires configuration, the runner, the autopilot and sound cues
// into the session every front end drives.
package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"grid-snake/ai"
	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/game/input"

	"golang.org/x/exp/rand"
)

// Session owns the current game and replaces it on restart. Only the goroutine
// running the front end's loop may call its methods.
type Session struct {
	Runner *game.Runner
	Pilot  *ai.Pilot

	cfg      *config.Config
	rng      *rand.Rand
	bindings input.Bindings
	onStep   func(game.StepResult)
	games    int
}

// NewSession starts the first game. onStep may be nil.
func NewSession(cfg *config.Config, onStep func(game.StepResult)) (*Session, error) {
	s := &Session{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.RandSeed())),
		bindings: input.DefaultBindings(),
		onStep:   onStep,
	}
	if cfg.Autopilot {
		s.Pilot = ai.NewPilot(ai.NewQLearning(s.rng), true)
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart discards the current game and starts a fresh one.
func (s *Session) Restart() error {
	g, err := game.NewGame(game.Options{
		Grid:       s.cfg.Grid(),
		Rand:       s.rng,
		FoodPolicy: s.cfg.FoodPolicy(),
	})
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}

	if s.Runner == nil {
		s.Runner = game.NewRunner(g, s.cfg.TickInterval(), s.cfg.StepMode())
		s.Runner.OnStep = s.onStep
		if s.Pilot != nil {
			s.Runner.Controller = s.Pilot
		}
	} else {
		s.Runner.Reset(g)
	}
	if s.Pilot != nil && s.games > 0 {
		s.Pilot.Agent.IncrementEpisode()
	}
	s.games++
	log.Printf("starting game %s (#%d) on %dx%d", g.UUID, s.games, g.Grid.Width, g.Grid.Height)
	return nil
}

func (s *Session) Game() *game.Game {
	return s.Runner.Game
}

// Key handles a key symbol from the front end. "r" restarts a finished game;
// bound symbols steer; everything else is ignored.
func (s *Session) Key(symbol string) error {
	if strings.EqualFold(symbol, "r") && s.Game().IsGameOver() {
		return s.Restart()
	}
	s.bindings.Apply(s.Game(), symbol)
	return nil
}

// Frame advances by dt of frame time. With the autopilot on, a finished game
// is replaced automatically.
func (s *Session) Frame(dt time.Duration) (int, error) {
	if s.Pilot != nil && s.Game().IsGameOver() {
		if err := s.Restart(); err != nil {
			return 0, err
		}
	}
	return s.Runner.Advance(dt), nil
}

// Games is the number of games started in this session.
func (s *Session) Games() int {
	return s.games
}
