package game

import (
	"fmt"
	"strings"
)

// Direction is a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in the order PossibleMoves reports them.
// Search tie-breaks depend on this order.
var Directions = [...]Direction{Left, Right, Up, Down}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name or its first letter, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("game: unknown direction %q: %w", s, ErrInvalidArgument)
}

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: r, Col: c}.
func Pos(r, c int) Position {
	return Position{Row: r, Col: c}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Placement is a tile a Generator wants to put on the board.
type Placement struct {
	Pos   Position
	Power uint8
}

func (p Placement) String() string {
	return fmt.Sprintf("%s@%s", NewTile(p.Power), p.Pos)
}
