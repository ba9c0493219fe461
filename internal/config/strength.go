package config

import (
	"fmt"

	"github.com/vovakirdan/twenty48/internal/game"
)

// Strength is a named search depth preset.
type Strength string

const (
	StrengthEasy   Strength = "easy"
	StrengthNormal Strength = "normal"
	StrengthHard   Strength = "hard"
)

// PlyForStrength returns the minimax ply for a preset.
func PlyForStrength(s Strength) (uint, error) {
	switch s {
	case StrengthEasy:
		return 1, nil
	case StrengthNormal:
		return 3, nil
	case StrengthHard:
		return 5, nil
	default:
		return 0, fmt.Errorf("config: unknown strength %q: %w", s, game.ErrInvalidArgument)
	}
}

// ApplyStrength sets the search depth of both minimax agents.
func ApplyStrength(cfg *Config, s Strength) error {
	ply, err := PlyForStrength(s)
	if err != nil {
		return err
	}
	cfg.Player.Ply = ply
	cfg.Generator.Ply = ply
	return nil
}
