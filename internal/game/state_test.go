package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// normalBoard is
//
//	[[_,    2,  _,  4],
//	 [_,    2,  _,  _],
//	 [8,    4,  4,  _],
//	 [2048, 64, 32, _]]
const normalBoard = "[[,2,,4],[,2,,],[8,4,4,],[2048,64,32,]]"

// fullBoard has no empty cell and no equal neighbours.
const fullBoard = "[[2,4],[8,16]]"

func TestSlideSingleRow(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		moved    bool
	}{
		{"simple merge", "[[2,2,,]]", "[[4,,,]]", true},
		{"merge with trailing tile", "[[2,2,2,]]", "[[4,2,,]]", true},
		{"double merge", "[[2,2,2,2]]", "[[4,4,,]]", true},
		{"no merge possible", "[[2,4,8,16]]", "[[2,4,8,16]]", false},
		{"slide with gap", "[[,,2,2]]", "[[4,,,]]", true},
		{"slide with multiple gaps", "[[2,,,2]]", "[[4,,,]]", true},
		{"no change needed", "[[4,2,,]]", "[[4,2,,]]", false},
		{"empty row", "[[,,,]]", "[[,,,]]", false},
		{"single tile", "[[,4,,]]", "[[4,,,]]", true},
		{"merged tile does not merge again", "[[4,2,2,]]", "[[4,4,,]]", true},
		{"different values stack", "[[,2,,4]]", "[[2,4,,]]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustParse(tt.input)
			assert.Equal(t, tt.moved, s.Move(Left))
			assert.Equal(t, tt.expected, s.String())
		})
	}
}

func TestMoveAllDirections(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{Left, "[[2,4,,],[2,,,],[8,8,,],[2048,64,32,]]"},
		{Right, "[[,,2,4],[,,,2],[,,8,8],[,2048,64,32]]"},
		{Up, "[[8,4,4,4],[2048,4,32,],[,64,,],[,,,]]"},
		{Down, "[[,,,],[,4,,],[8,4,4,],[2048,64,32,4]]"},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := MustParse(normalBoard)
			require.True(t, s.Move(tt.dir))
			assert.True(t, MustParse(tt.expected).Equal(s), "got %s", s)

			blocked := MustParse(fullBoard)
			assert.False(t, blocked.Move(tt.dir))
			assert.Equal(t, fullBoard, blocked.String())
		})
	}
}

func TestMoveUpWithoutMerge(t *testing.T) {
	s, err := NewState(4, 4)
	require.NoError(t, err)
	require.NoError(t, s.GenerateTile(Pos(0, 0), 1))
	require.NoError(t, s.GenerateTile(Pos(1, 1), 2))

	require.True(t, s.Move(Up))
	assert.Equal(t, "[[2,4,,],[,,,],[,,,],[,,,]]", s.String())
}

func TestMergeOnceVertical(t *testing.T) {
	s := MustParse("[[2],[2],[2],[]]")
	require.True(t, s.Move(Up))
	assert.Equal(t, "[[4],[2],[],[]]", s.String())

	s = MustParse("[[2],[2],[2],[]]")
	require.True(t, s.Move(Down))
	assert.Equal(t, "[[],[],[2],[4]]", s.String())
}

func TestPossibleMoves(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected []Direction
	}{
		{"full board", fullBoard, nil},
		{"normal board", normalBoard, []Direction{Left, Right, Up, Down}},
		{"left aligned", "[[4,2,,],[,,,]]", []Direction{Right, Down}},
		{"single column merge", "[[2],[2]]", []Direction{Up, Down}},
		{"top right corner", "[[,2],[,]]", []Direction{Left, Down}},
		{"empty board", "[[,],[,]]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustParse(tt.board)
			assert.Equal(t, tt.expected, s.PossibleMoves())
			for _, d := range Directions {
				assert.Equal(t, contains(tt.expected, d), s.CanMove(d), d.String())
			}
		})
	}
}

func TestExcludedMoveNeverMutates(t *testing.T) {
	boards := []string{
		fullBoard,
		"[[4,2,,],[,,,]]",
		"[[2,4,2],[4,2,4],[2,4,]]",
		"[[,,,],[,,,],[,,,],[,,,8]]",
	}
	for _, b := range boards {
		s := MustParse(b)
		possible := s.PossibleMoves()
		for _, d := range Directions {
			if contains(possible, d) {
				continue
			}
			before := s.Clone()
			assert.False(t, s.Move(d), "%s %s", b, d)
			assert.True(t, before.Equal(s), "%s %s mutated", b, d)
		}
	}
}

func TestPossibleMoveAlwaysChangesBoard(t *testing.T) {
	s := MustParse(normalBoard)
	for _, d := range s.PossibleMoves() {
		next := s.Clone()
		require.True(t, next.Move(d))
		assert.False(t, next.Equal(s), d.String())
	}
}

func TestEmptyPositions(t *testing.T) {
	assert.Empty(t, MustParse(fullBoard).EmptyPositions())
	assert.Equal(t, []Position{
		Pos(0, 0), Pos(0, 2), Pos(1, 0), Pos(1, 2), Pos(1, 3), Pos(2, 3), Pos(3, 3),
	}, MustParse(normalBoard).EmptyPositions())
}

func TestGenerateTile(t *testing.T) {
	s := MustParse(fullBoard)
	assert.ErrorIs(t, s.GenerateTile(Pos(2, 2), 1), ErrOutOfRange)
	assert.ErrorIs(t, s.GenerateTile(Pos(-1, 0), 1), ErrOutOfRange)
	assert.ErrorIs(t, s.GenerateTile(Pos(0, 0), 1), ErrOccupied)
	assert.ErrorIs(t, s.GenerateTile(Pos(0, 0), 1), ErrInvalidArgument)

	n := MustParse(normalBoard)
	assert.ErrorIs(t, n.GenerateTile(Pos(0, 2), 0), ErrInvalidArgument)
	assert.ErrorIs(t, n.GenerateTile(Pos(0, 2), MaxPower+1), ErrInvalidArgument)

	require.NoError(t, n.GenerateTile(Pos(0, 2), 11))
	tile, err := n.Tile(Pos(0, 2))
	require.NoError(t, err)
	assert.Equal(t, uint8(11), tile.Power())
}

func TestCloneIsIndependent(t *testing.T) {
	s := MustParse(normalBoard)
	c := s.Clone()
	require.True(t, s.Equal(c))

	require.True(t, c.Move(Left))
	assert.False(t, s.Equal(c))
	assert.Equal(t, normalBoard, s.String())
}

func TestEqualDifferentDimensions(t *testing.T) {
	a, err := NewState(2, 3)
	require.NoError(t, err)
	b, err := NewState(3, 2)
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

func TestMaxTileAndIsOver(t *testing.T) {
	assert.Equal(t, uint64(2048), MustParse(normalBoard).MaxTile().Value())
	assert.False(t, MustParse(normalBoard).IsOver())
	assert.True(t, MustParse(fullBoard).IsOver())
	assert.False(t, MustParse("[[2,2],[8,16]]").IsOver())
}

func TestMaxPowerTilesDoNotMerge(t *testing.T) {
	s, err := NewState(1, 2)
	require.NoError(t, err)
	require.NoError(t, s.GenerateTile(Pos(0, 0), MaxPower))
	require.NoError(t, s.GenerateTile(Pos(0, 1), MaxPower))

	assert.Empty(t, s.PossibleMoves())
	assert.False(t, s.Move(Left))
}

func contains(dirs []Direction, d Direction) bool {
	for _, x := range dirs {
		if x == d {
			return true
		}
	}
	return false
}
