// Package config holds the command-line settings shared by every driver.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

var ErrInvalid = errors.New("invalid configuration")

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	// Speed is the tick interval in milliseconds.
	Speed int
	// Seed drives food placement and the autopilot; 0 means time-based.
	Seed uint64

	Autopilot  bool
	FrameTick  bool
	AvoidSnake bool
	Mute       bool
	Debug      bool
	LogDir     string

	Episodes int
	MaxSteps int
}

// NewConfig returns a Config for the classic 20x20 board at 100 ms per tick.
func NewConfig() *Config {
	return &Config{
		Width:    types.DefaultWidth,
		Height:   types.DefaultHeight,
		Speed:    int(types.DefaultTickInterval / time.Millisecond),
		LogDir:   "logs",
		Episodes: 1000,
		MaxSteps: 2000,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Speed, "speed", c.Speed, "tick interval in milliseconds (lower = faster)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time-based")
	fs.BoolVar(&c.Autopilot, "autopilot", c.Autopilot, "let the Q-learning agent steer")
	fs.BoolVar(&c.FrameTick, "frame-tick", c.FrameTick, "legacy mode: tick once per rendered frame")
	fs.BoolVar(&c.AvoidSnake, "avoid-snake", c.AvoidSnake, "never place food on the snake")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound cues")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write debug log to -logdir")
	fs.StringVar(&c.LogDir, "logdir", c.LogDir, "directory for the debug log")
	fs.IntVar(&c.Episodes, "episodes", c.Episodes, "training episodes (snake-train)")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "step cap per training episode")
}

// Validate checks ranges after flag parsing.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Width, c.Height, ErrInvalid)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed %dms: %w", c.Speed, ErrInvalid)
	}
	if c.Episodes < 0 || c.MaxSteps <= 0 {
		return fmt.Errorf("episodes %d, max steps %d: %w", c.Episodes, c.MaxSteps, ErrInvalid)
	}
	return nil
}

func (c *Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Speed) * time.Millisecond
}

func (c *Config) StepMode() game.StepMode {
	if c.FrameTick {
		return game.PerFrame
	}
	return game.FixedStep
}

func (c *Config) FoodPolicy() manager.FoodPolicy {
	if c.AvoidSnake {
		return manager.AvoidSnake
	}
	return manager.AllowOnSnake
}

// RandSeed resolves a zero seed to the current time.
func (c *Config) RandSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
