package eval

import "github.com/vovakirdan/twenty48/internal/game"

// TileCount scores a board by minus the number of occupied cells.
type TileCount struct{}

func (TileCount) Evaluate(s *game.State) (int64, error) {
	n := len(s.EmptyPositions())
	return int64(n - s.Height()*s.Width()), nil
}

// SumExponents scores a board by minus the sum of tile exponents.
type SumExponents struct{}

func (SumExponents) Evaluate(s *game.State) (int64, error) {
	var sum int64
	for r := range s.Height() {
		for c := range s.Width() {
			t, err := s.Tile(game.Pos(r, c))
			if err != nil {
				return 0, err
			}
			sum -= int64(t.Power())
		}
	}
	return sum, nil
}
