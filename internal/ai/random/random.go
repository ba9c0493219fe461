// Package random provides agents that choose uniformly at random.
// Both are deterministic for a given seed and not safe for concurrent use.
package random

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/twenty48/internal/game"
)

// DefaultSpawn4 is the usual chance that a new tile is a 4.
const DefaultSpawn4 = 0.1

// Generator drops a tile on a uniformly chosen empty cell.
type Generator struct {
	rng    *rand.Rand
	spawn4 float64
}

var _ game.Generator = (*Generator)(nil)

// NewGenerator returns a generator seeded with seed. spawn4 is the chance a
// new tile is a 4 instead of a 2 and must lie in [0, 1].
func NewGenerator(seed int64, spawn4 float64) (*Generator, error) {
	if spawn4 < 0 || spawn4 > 1 {
		return nil, fmt.Errorf("random: spawn4 %v outside [0,1]: %w", spawn4, game.ErrInvalidArgument)
	}
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		spawn4: spawn4,
	}, nil
}

func (g *Generator) Generate(s *game.State) (game.Placement, bool, error) {
	empties := s.EmptyPositions()
	if len(empties) == 0 {
		return game.Placement{}, false, nil
	}

	pos := empties[g.rng.Intn(len(empties))]

	// 2 by default, 4 with probability spawn4
	power := uint8(1)
	if g.rng.Float64() < g.spawn4 {
		power = 2
	}
	return game.Placement{Pos: pos, Power: power}, true, nil
}

// Player picks a uniformly random possible move.
type Player struct {
	rng *rand.Rand
}

var _ game.Player = (*Player)(nil)

// NewPlayer returns a player seeded with seed.
func NewPlayer(seed int64) *Player {
	return &Player{rng: rand.New(rand.NewSource(seed))}
}

func (p *Player) Play(s *game.State) (game.Direction, bool, error) {
	moves := s.PossibleMoves()
	if len(moves) == 0 {
		return 0, false, nil
	}
	return moves[p.rng.Intn(len(moves))], true, nil
}
