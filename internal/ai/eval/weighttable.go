package eval

import (
	"fmt"
	"math"

	"github.com/vovakirdan/twenty48/internal/game"
)

// Shipped tables. All weights are negative, so a big tile in a heavy cell
// costs the most and scores closer to zero are better. The arrays are shared
// by every evaluator built from them and never written.
var (
	gradientLinear4x4 = [16]int64{
		-4, -5, -6, -7,
		-3, -4, -5, -6,
		-2, -3, -4, -5,
		-1, -2, -3, -4,
	}
	gradientExponential4x4 = [16]int64{
		-8, -16, -32, -64,
		-4, -8, -16, -32,
		-2, -4, -8, -16,
		-1, -2, -4, -8,
	}
	zigzagLinear4x4 = [16]int64{
		-16, -15, -14, -13,
		-9, -10, -11, -12,
		-8, -7, -6, -5,
		-1, -2, -3, -4,
	}
	zigzagExponential4x4 = [16]int64{
		-32768, -16384, -8192, -4096,
		-256, -512, -1024, -2048,
		-128, -64, -32, -16,
		-1, -2, -4, -8,
	}
)

// WeightTable scores a board as the sum over occupied cells of the tile value
// times the weight of that cell.
type WeightTable struct {
	height  int
	width   int
	weights []int64
}

// NewWeightTable returns an evaluator over a height×width row-major table.
// The table is referenced, not copied, and must not change afterwards.
func NewWeightTable(height, width int, weights []int64) (*WeightTable, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("eval: weight table size %dx%d: %w", height, width, game.ErrInvalidArgument)
	}
	if weights == nil {
		return nil, fmt.Errorf("eval: weight table is nil: %w", game.ErrInvalidArgument)
	}
	if len(weights) < height*width {
		return nil, fmt.Errorf("eval: weight table has %d weights, want %d: %w",
			len(weights), height*width, game.ErrInvalidArgument)
	}
	return &WeightTable{height: height, width: width, weights: weights}, nil
}

// Height returns the number of rows the table covers.
func (w *WeightTable) Height() int { return w.height }

// Width returns the number of columns the table covers.
func (w *WeightTable) Width() int { return w.width }

// Evaluate returns ErrSizeMismatch unless s has the table's dimensions.
func (w *WeightTable) Evaluate(s *game.State) (int64, error) {
	if s.Height() != w.height || s.Width() != w.width {
		return 0, fmt.Errorf("eval: %dx%d board on %dx%d weight table: %w",
			s.Height(), s.Width(), w.height, w.width, ErrSizeMismatch)
	}
	var sum int64
	for r := range w.height {
		for c := range w.width {
			t, err := s.Tile(game.Pos(r, c))
			if err != nil {
				return 0, err
			}
			if t.Empty() {
				continue
			}
			var ok bool
			if sum, ok = addProduct(sum, t.Value(), w.weights[r*w.width+c]); !ok {
				return 0, fmt.Errorf("eval: weighted sum overflows at %s: %w", game.Pos(r, c), game.ErrInvalidOperation)
			}
		}
	}
	return sum, nil
}

// addProduct returns sum + v*weight and whether it fits in an int64.
func addProduct(sum int64, v uint64, weight int64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	p := int64(v) * weight
	if v != 0 && p/int64(v) != weight {
		return 0, false
	}
	next := sum + p
	if (p > 0 && next < sum) || (p < 0 && next > sum) {
		return 0, false
	}
	return next, true
}

func mustTable(weights []int64) *WeightTable {
	w, err := NewWeightTable(4, 4, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// GradientLinear4x4 weights cells linearly by distance from the bottom-left corner.
func GradientLinear4x4() *WeightTable { return mustTable(gradientLinear4x4[:]) }

// GradientExponential4x4 doubles the weight with each step away from the
// bottom-left corner.
func GradientExponential4x4() *WeightTable { return mustTable(gradientExponential4x4[:]) }

// ZigzagLinear4x4 weights cells linearly along a snake path.
func ZigzagLinear4x4() *WeightTable { return mustTable(zigzagLinear4x4[:]) }

// ZigzagExponential4x4 doubles the weight with each step along a snake path.
func ZigzagExponential4x4() *WeightTable { return mustTable(zigzagExponential4x4[:]) }
