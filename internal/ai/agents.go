// Package ai builds the configured agents.
package ai

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/twenty48/internal/ai/eval"
	"github.com/vovakirdan/twenty48/internal/ai/random"
	"github.com/vovakirdan/twenty48/internal/ai/search"
	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
)

// NewPlayer builds the player described by cfg. A human player has no agent
// and yields nil.
func NewPlayer(cfg config.AgentConfig, seed int64, logger *log.Logger) (game.Player, error) {
	switch cfg.Kind {
	case config.KindHuman:
		return nil, nil
	case config.KindRandom:
		return random.NewPlayer(seed), nil
	case config.KindMinimax:
		m, err := newMinimax(cfg, logger)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("ai: unknown player kind %q: %w", cfg.Kind, game.ErrInvalidArgument)
	}
}

// NewGenerator builds the generator described by cfg.
func NewGenerator(cfg config.AgentConfig, seed int64, logger *log.Logger) (game.Generator, error) {
	switch cfg.Kind {
	case config.KindRandom:
		g, err := random.NewGenerator(seed, cfg.Spawn4)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.KindMinimax:
		m, err := newMinimax(cfg, logger)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("ai: unknown generator kind %q: %w", cfg.Kind, game.ErrInvalidArgument)
	}
}

func newMinimax(cfg config.AgentConfig, logger *log.Logger) (*search.Minimax, error) {
	fn, err := eval.Lookup(cfg.Eval)
	if err != nil {
		return nil, fmt.Errorf("ai: %w", err)
	}
	return search.New(fn, cfg.Ply, search.WithWorkers(cfg.Workers), search.WithLogger(logger))
}
