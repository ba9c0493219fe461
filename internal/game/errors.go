package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a value that can never be valid, such as a
	// zero-sized board.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a position outside the board.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidOperation reports an operation that is not defined for the
	// current value, such as doubling an empty tile.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrOccupied is returned when a tile is generated on a non-empty cell.
	ErrOccupied = fmt.Errorf("%w: position is occupied", ErrInvalidArgument)
)
