package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/twenty48/internal/game"
)

const normalBoard = "[[,2,,4],[,2,,],[8,4,4,],[2048,64,32,]]"

func TestSimpleEvaluators(t *testing.T) {
	tests := []struct {
		name      string
		board     string
		tileCount int64
		sumExp    int64
	}{
		{"empty", "[[,],[,]]", 0, 0},
		{"full", "[[2,4],[8,16]]", -4, -10},
		{"normal", normalBoard, -9, -(1 + 2 + 1 + 3 + 2 + 2 + 11 + 6 + 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := game.MustParse(tt.board)

			got, err := TileCount{}.Evaluate(s)
			require.NoError(t, err)
			assert.Equal(t, tt.tileCount, got)

			got, err = SumExponents{}.Evaluate(s)
			require.NoError(t, err)
			assert.Equal(t, tt.sumExp, got)
		})
	}
}

func TestWeightTables(t *testing.T) {
	s := game.MustParse(normalBoard)

	tests := []struct {
		name string
		fn   *WeightTable
		want int64
	}{
		{"zigzag linear", ZigzagLinear4x4(), -2490},
		{"gradient linear", GradientLinear4x4(), -(2*5 + 4*7 + 2*4 + 8*2 + 4*3 + 4*4 + 2048*1 + 64*2 + 32*3)},
		{"gradient exponential", GradientExponential4x4(), -(2*16 + 4*64 + 2*8 + 8*2 + 4*4 + 4*8 + 2048*1 + 64*2 + 32*4)},
		{"zigzag exponential", ZigzagExponential4x4(), -(2*16384 + 4*4096 + 2*512 + 8*128 + 4*64 + 4*32 + 2048*1 + 64*2 + 32*4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn.Evaluate(s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeightTableSizeMismatch(t *testing.T) {
	for _, board := range []string{"[[2,4],[8,16]]", "[[2,,,],[,,,],[,,,]]"} {
		_, err := ZigzagLinear4x4().Evaluate(game.MustParse(board))
		assert.ErrorIs(t, err, ErrSizeMismatch, board)
		assert.ErrorIs(t, err, game.ErrInvalidOperation, board)
	}
}

func TestWeightTableOverflow(t *testing.T) {
	tests := []struct {
		name    string
		power   uint8
		want    int64
		wantErr bool
	}{
		{"fits", 40, -(1 << 55), false},
		{"product overflows", 50, 0, true},
		{"value overflows", game.MaxPower, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := game.NewState(4, 4)
			require.NoError(t, err)
			require.NoError(t, s.GenerateTile(game.Pos(0, 0), tt.power))

			got, err := ZigzagExponential4x4().Evaluate(s)
			if tt.wantErr {
				assert.ErrorIs(t, err, game.ErrInvalidOperation)
				assert.NotErrorIs(t, err, ErrSizeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	// Each product fits, the sum does not.
	s, err := game.NewState(1, 2)
	require.NoError(t, err)
	require.NoError(t, s.GenerateTile(game.Pos(0, 0), 62))
	require.NoError(t, s.GenerateTile(game.Pos(0, 1), 62))
	table, err := NewWeightTable(1, 2, []int64{-2, -1})
	require.NoError(t, err)
	_, err = table.Evaluate(s)
	assert.ErrorIs(t, err, game.ErrInvalidOperation)
}

func TestNewWeightTable(t *testing.T) {
	_, err := NewWeightTable(0, 4, make([]int64, 16))
	assert.ErrorIs(t, err, game.ErrInvalidArgument)

	_, err = NewWeightTable(4, 4, nil)
	assert.ErrorIs(t, err, game.ErrInvalidArgument)

	_, err = NewWeightTable(4, 4, make([]int64, 15))
	assert.ErrorIs(t, err, game.ErrInvalidArgument)

	w, err := NewWeightTable(1, 2, []int64{3, -1})
	require.NoError(t, err)
	got, err := w.Evaluate(game.MustParse("[[4,8]]"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}

func TestSharedTablesAreNotCopied(t *testing.T) {
	a, b := ZigzagLinear4x4(), ZigzagLinear4x4()
	assert.Same(t, &a.weights[0], &b.weights[0])
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{
		"gradient-exponential-4x4",
		"gradient-linear-4x4",
		"sum-exponents",
		"tile-count",
		"zigzag-exponential-4x4",
		"zigzag-linear-4x4",
	}, Registry.Names())
	assert.True(t, Registry.Exists(Default))

	fn, err := Lookup("zigzag-linear-4x4")
	require.NoError(t, err)
	got, err := fn.Evaluate(game.MustParse(normalBoard))
	require.NoError(t, err)
	assert.Equal(t, int64(-2490), got)

	_, err = Lookup("nope")
	assert.Error(t, err)
}
