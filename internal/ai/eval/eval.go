// Package eval provides board evaluation functions for the search.
//
// An evaluation maps a state to a score from the mover's point of view:
// higher is better for the player and worse for the tile generator.
// Evaluations are pure functions of the board.
package eval

import (
	"fmt"
	"math"

	"github.com/vovakirdan/twenty48/internal/game"
	"github.com/vovakirdan/twenty48/internal/registry"
)

// Reserved scores. No evaluation function returns them.
const (
	PosInf int64 = math.MaxInt64
	NegInf int64 = math.MinInt64

	// GameOver is the value of a position with no legal move. The search
	// subtracts the remaining ply so earlier losses score lower.
	GameOver int64 = -1_000_000_000_000_000_000
)

// ErrSizeMismatch is returned when a fixed-size evaluator sees a board of
// another size.
var ErrSizeMismatch = fmt.Errorf("%w: board size mismatch", game.ErrInvalidOperation)

// Function scores a state.
type Function interface {
	Evaluate(s *game.State) (int64, error)
}

// Func adapts an ordinary function to the Function interface.
type Func func(s *game.State) (int64, error)

// Evaluate calls f(s).
func (f Func) Evaluate(s *game.State) (int64, error) {
	return f(s)
}

// Registry holds the named evaluators selectable from config and the CLI.
var Registry = registry.New[Function]("evaluator")

// Default is the evaluator used when none is configured.
const Default = "zigzag-exponential-4x4"

// Lookup returns the evaluator registered under name.
func Lookup(name string) (Function, error) {
	return Registry.Create(name)
}

func init() {
	Registry.Register("tile-count", "Fewest tiles on the board", func() Function { return TileCount{} })
	Registry.Register("sum-exponents", "Smallest sum of tile exponents", func() Function { return SumExponents{} })
	Registry.Register("gradient-linear-4x4", "Linear gradient toward the bottom-left corner", func() Function { return GradientLinear4x4() })
	Registry.Register("gradient-exponential-4x4", "Exponential gradient toward the bottom-left corner", func() Function { return GradientExponential4x4() })
	Registry.Register("zigzag-linear-4x4", "Linear snake ending in the bottom-left corner", func() Function { return ZigzagLinear4x4() })
	Registry.Register("zigzag-exponential-4x4", "Exponential snake ending in the bottom-left corner", func() Function { return ZigzagExponential4x4() })
}
