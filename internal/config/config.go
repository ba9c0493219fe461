// Package config provides YAML-based configuration loading and strength
// presets for twenty48.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/twenty48/internal/ai/eval"
	"github.com/vovakirdan/twenty48/internal/game"
)

// Agent kinds.
const (
	KindHuman   = "human"
	KindRandom  = "random"
	KindMinimax = "minimax"
)

// Config contains the whole twenty48 configuration.
type Config struct {
	Board     BoardConfig   `yaml:"board"`
	Player    AgentConfig   `yaml:"player"`
	Generator AgentConfig   `yaml:"generator"`
	Seed      int64         `yaml:"seed"` // 0 picks a seed from the clock
	Display   DisplayConfig `yaml:"display"`
	Log       LogConfig     `yaml:"log"`
}

// BoardConfig describes the starting board.
type BoardConfig struct {
	Height       int    `yaml:"height"`
	Width        int    `yaml:"width"`
	Initial      string `yaml:"initial"`       // textual board, e.g. "[[2,],[,4]]"; overrides height and width
	InitialTiles int    `yaml:"initial_tiles"` // generated before the first move
}

// AgentConfig selects the agent for one side of the game.
type AgentConfig struct {
	Kind    string  `yaml:"kind"`    // human, random or minimax
	Eval    string  `yaml:"eval"`    // evaluator name, minimax only
	Ply     uint    `yaml:"ply"`     // search depth in actor-turns, minimax only
	Workers int     `yaml:"workers"` // root search goroutines, minimax only
	Spawn4  float64 `yaml:"spawn4"`  // chance of a 4 tile, random generator only
}

// DisplayConfig controls the terminal front end.
type DisplayConfig struct {
	Cycle      time.Duration `yaml:"cycle"`       // one player move plus one tile in watch mode
	HumanDelay time.Duration `yaml:"human_delay"` // pause before the tile after a human move
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stderr, or nowhere in the terminal UI
}

// State returns the starting board.
func (c Config) State() (*game.State, error) {
	if c.Board.Initial != "" {
		return game.Parse(c.Board.Initial)
	}
	return game.NewState(c.Board.Height, c.Board.Width)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Board.Initial != "" {
		if _, err := game.Parse(c.Board.Initial); err != nil {
			return fmt.Errorf("config: board.initial: %w", err)
		}
	} else if c.Board.Height < 1 || c.Board.Width < 1 {
		return fmt.Errorf("config: board size %dx%d: %w", c.Board.Height, c.Board.Width, game.ErrInvalidArgument)
	}
	if c.Board.InitialTiles < 0 {
		return fmt.Errorf("config: board.initial_tiles %d: %w", c.Board.InitialTiles, game.ErrInvalidArgument)
	}

	switch c.Player.Kind {
	case KindHuman, KindRandom, KindMinimax:
	default:
		return fmt.Errorf("config: player.kind %q: %w", c.Player.Kind, game.ErrInvalidArgument)
	}
	if err := c.Player.validate("player"); err != nil {
		return err
	}

	switch c.Generator.Kind {
	case KindRandom, KindMinimax:
	default:
		return fmt.Errorf("config: generator.kind %q: %w", c.Generator.Kind, game.ErrInvalidArgument)
	}
	if err := c.Generator.validate("generator"); err != nil {
		return err
	}

	if c.Display.Cycle <= 0 {
		return fmt.Errorf("config: display.cycle %s: %w", c.Display.Cycle, game.ErrInvalidArgument)
	}
	if c.Display.HumanDelay < 0 {
		return fmt.Errorf("config: display.human_delay %s: %w", c.Display.HumanDelay, game.ErrInvalidArgument)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

func (a AgentConfig) validate(side string) error {
	if a.Kind == KindMinimax && !eval.Registry.Exists(a.Eval) {
		return fmt.Errorf("config: %s.eval %q is not one of %v: %w", side, a.Eval, eval.Registry.Names(), game.ErrInvalidArgument)
	}
	if a.Workers < 0 {
		return fmt.Errorf("config: %s.workers %d: %w", side, a.Workers, game.ErrInvalidArgument)
	}
	if a.Spawn4 < 0 || a.Spawn4 > 1 {
		return fmt.Errorf("config: %s.spawn4 %v outside [0,1]: %w", side, a.Spawn4, game.ErrInvalidArgument)
	}
	return nil
}
