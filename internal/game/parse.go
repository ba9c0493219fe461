package game

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Parse reads the textual board form produced by State.String, e.g.
// "[[,2,,4],[8,4,4,]]". Every row must have the same number of cells and
// every value must be a power of two no smaller than 2.
func Parse(text string) (*State, error) {
	text = strings.Join(strings.Fields(text), "")
	if !strings.HasPrefix(text, "[[") || !strings.HasSuffix(text, "]]") || len(text) < 4 {
		return nil, fmt.Errorf("game: parse %q: expected [[...]]: %w", text, ErrInvalidArgument)
	}
	rows := strings.Split(text[2:len(text)-2], "],[")

	var s *State
	for r, row := range rows {
		cells := strings.Split(row, ",")
		if s == nil {
			var err error
			if s, err = NewState(len(rows), len(cells)); err != nil {
				return nil, err
			}
		}
		if len(cells) != s.Width() {
			return nil, fmt.Errorf("game: parse: row %d has %d cells, want %d: %w",
				r, len(cells), s.Width(), ErrInvalidArgument)
		}
		for c, cell := range cells {
			if cell == "" {
				continue
			}
			power, err := parsePower(cell)
			if err != nil {
				return nil, fmt.Errorf("game: parse: cell (%d,%d): %w", r, c, err)
			}
			s.grid.set(r, c, NewTile(power))
		}
	}
	return s, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string) *State {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

func parsePower(cell string) (uint8, error) {
	v, err := strconv.ParseUint(cell, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q: %w", cell, ErrInvalidArgument)
	}
	if v < 2 || bits.OnesCount64(v) != 1 {
		return 0, fmt.Errorf("value %d is not a power of two: %w", v, ErrInvalidArgument)
	}
	return uint8(bits.TrailingZeros64(v)), nil
}
