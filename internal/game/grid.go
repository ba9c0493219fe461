package game

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size, row-major array of tiles.
//
// A Grid owns its cells. Assigning a Grid value shares the cells, so callers
// that need an independent board must use Clone.
type Grid struct {
	height int
	width  int
	cells  []Tile
}

// NewGrid creates an empty grid of height rows by width columns.
func NewGrid(height, width int) (Grid, error) {
	if height < 1 || width < 1 {
		return Grid{}, fmt.Errorf("game: grid size %dx%d: %w", height, width, ErrInvalidArgument)
	}
	return Grid{
		height: height,
		width:  width,
		cells:  make([]Tile, height*width),
	}, nil
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Contains reports whether (r, c) lies on the grid.
func (g Grid) Contains(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// Tile returns the tile at row r, column c.
func (g Grid) Tile(r, c int) (Tile, error) {
	if !g.Contains(r, c) {
		return Empty, g.rangeError(r, c)
	}
	return g.cells[g.offset(r, c)], nil
}

// SetTile replaces the tile at row r, column c.
func (g Grid) SetTile(r, c int, t Tile) error {
	if !g.Contains(r, c) {
		return g.rangeError(r, c)
	}
	g.cells[g.offset(r, c)] = t
	return nil
}

// Equal reports whether both grids have the same size and the same tiles.
func (g Grid) Equal(other Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return Grid{height: g.height, width: g.width, cells: cells}
}

// String renders the grid as rows of comma-separated values, e.g.
// [[2,4],[8,16]]. Empty cells render as nothing: [[,2]].
func (g Grid) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := range g.height {
		if r > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for c := range g.width {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(g.at(r, c).String())
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

// at and set skip bounds checks; callers iterate within the grid.
func (g Grid) at(r, c int) Tile {
	return g.cells[g.offset(r, c)]
}

func (g Grid) set(r, c int, t Tile) {
	g.cells[g.offset(r, c)] = t
}

func (g Grid) offset(r, c int) int {
	return r*g.width + c
}

func (g Grid) rangeError(r, c int) error {
	return fmt.Errorf("game: position (%d,%d) on %dx%d grid: %w", r, c, g.height, g.width, ErrOutOfRange)
}
