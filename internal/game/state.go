package game

import "fmt"

// State is a game position: one board plus the rules that mutate it.
type State struct {
	grid Grid
}

// NewState creates an empty board of height rows by width columns.
func NewState(height, width int) (*State, error) {
	g, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}
	return &State{grid: g}, nil
}

// Height returns the number of rows.
func (s *State) Height() int {
	return s.grid.Height()
}

// Width returns the number of columns.
func (s *State) Width() int {
	return s.grid.Width()
}

// Tile returns the tile at pos.
func (s *State) Tile(pos Position) (Tile, error) {
	return s.grid.Tile(pos.Row, pos.Col)
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	return &State{grid: s.grid.Clone()}
}

// Equal reports whether both states hold identical boards.
func (s *State) Equal(other *State) bool {
	return s.grid.Equal(other.grid)
}

// String returns the textual board form, see Grid.String.
func (s *State) String() string {
	return s.grid.String()
}

// EmptyPositions lists every empty cell in row-major order.
func (s *State) EmptyPositions() []Position {
	var empties []Position
	for r := range s.Height() {
		for c := range s.Width() {
			if s.grid.at(r, c).Empty() {
				empties = append(empties, Pos(r, c))
			}
		}
	}
	return empties
}

// GenerateTile places a tile of 2^power on the empty cell at pos.
func (s *State) GenerateTile(pos Position, power uint8) error {
	if power == 0 || power > MaxPower {
		return fmt.Errorf("game: tile power %d: %w", power, ErrInvalidArgument)
	}
	t, err := s.Tile(pos)
	if err != nil {
		return err
	}
	if !t.Empty() {
		return fmt.Errorf("game: generate at %s: %w", pos, ErrOccupied)
	}
	s.grid.set(pos.Row, pos.Col, NewTile(power))
	return nil
}

// PossibleMoves returns the directions that would change the board, in the
// order Left, Right, Up, Down.
func (s *State) PossibleMoves() []Direction {
	var moves []Direction
	for _, d := range Directions {
		if s.CanMove(d) {
			moves = append(moves, d)
		}
	}
	return moves
}

// CanMove reports whether moving in dir would change the board. Scanning each
// line in travel order, a move exists when a tile has an empty cell ahead of
// it or an equal tile directly ahead of it.
func (s *State) CanMove(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	ln := s.line(dir)
	for i := range ln.count {
		for k := 0; k+1 < ln.length; k++ {
			near := s.grid.at(ln.cell(i, k))
			far := s.grid.at(ln.cell(i, k+1))
			if far.Empty() {
				continue
			}
			if near.Empty() || mergeable(near, far) {
				return true
			}
		}
	}
	return false
}

// Move slides every tile toward dir, merging equal neighbours once per move.
// It returns false and leaves the board untouched when nothing would change.
func (s *State) Move(dir Direction) bool {
	if !s.CanMove(dir) {
		return false
	}
	ln := s.line(dir)
	for i := range ln.count {
		s.compact(ln, i)
	}
	return true
}

// compact slides line i toward its near edge. w is the write cursor: the
// last cell that received a tile. A merge advances w past the doubled tile so
// it cannot merge again in this move.
func (s *State) compact(ln line, i int) {
	w := 0
	for k := 1; k < ln.length; k++ {
		sr, sc := ln.cell(i, k)
		src := s.grid.at(sr, sc)
		if src.Empty() {
			continue
		}
		wr, wc := ln.cell(i, w)
		dst := s.grid.at(wr, wc)
		switch {
		case dst.Empty():
			s.grid.set(wr, wc, src)
		case mergeable(dst, src):
			if err := dst.Increment(); err != nil {
				panic(err)
			}
			s.grid.set(wr, wc, dst)
			w++
		default:
			w++
			if w == k {
				continue
			}
			wr, wc = ln.cell(i, w)
			s.grid.set(wr, wc, src)
		}
		s.grid.set(sr, sc, Empty)
	}
}

// MaxTile returns the largest tile on the board.
func (s *State) MaxTile() Tile {
	var best Tile
	for _, t := range s.grid.cells {
		if t > best {
			best = t
		}
	}
	return best
}

// IsOver reports whether no move is possible.
func (s *State) IsOver() bool {
	for _, d := range Directions {
		if s.CanMove(d) {
			return false
		}
	}
	return true
}

func mergeable(a, b Tile) bool {
	return !a.Empty() && a == b && a.Power() < MaxPower
}

// line maps (line index, step from the near edge) to grid coordinates for one
// direction, so a single compaction routine serves all four moves.
type line struct {
	dir    Direction
	count  int // number of lines
	length int // cells per line
	height int
	width  int
}

func (s *State) line(dir Direction) line {
	h, w := s.Height(), s.Width()
	ln := line{dir: dir, height: h, width: w}
	switch dir {
	case Left, Right:
		ln.count, ln.length = h, w
	default:
		ln.count, ln.length = w, h
	}
	return ln
}

func (ln line) cell(i, k int) (r, c int) {
	switch ln.dir {
	case Left:
		return i, k
	case Right:
		return i, ln.width - 1 - k
	case Up:
		return k, i
	default:
		return ln.height - 1 - k, i
	}
}
