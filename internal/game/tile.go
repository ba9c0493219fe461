package game

import (
	"fmt"
	"strconv"
)

// MaxPower is the largest exponent a tile may hold. 2^63 still fits in a uint64.
const MaxPower = 63

// Tile is a single board cell. The zero value is an empty tile.
type Tile uint8

// Empty is the empty tile.
const Empty Tile = 0

// NewTile returns a tile holding 2^power. A power of 0 yields an empty tile.
func NewTile(power uint8) Tile {
	return Tile(power)
}

// Power returns n such that the tile holds 2^n, or 0 for an empty tile.
func (t Tile) Power() uint8 {
	return uint8(t)
}

// Empty reports whether the tile holds no number.
func (t Tile) Empty() bool {
	return t == Empty
}

// Value returns the number on the tile, or 0 when empty.
func (t Tile) Value() uint64 {
	if t.Empty() {
		return 0
	}
	return 1 << t.Power()
}

// Increment doubles the number on the tile.
func (t *Tile) Increment() error {
	if t.Empty() {
		return fmt.Errorf("game: cannot increment an empty tile: %w", ErrInvalidOperation)
	}
	if t.Power() >= MaxPower {
		return fmt.Errorf("game: tile 2^%d cannot be doubled: %w", t.Power(), ErrInvalidOperation)
	}
	*t++
	return nil
}

// String returns the decimal value of the tile, or "" when empty.
func (t Tile) String() string {
	if t.Empty() {
		return ""
	}
	return strconv.FormatUint(t.Value(), 10)
}
