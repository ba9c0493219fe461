package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/twenty48/internal/ai/eval"
	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/engine"
	"github.com/vovakirdan/twenty48/internal/game"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestAnalyzeCommand(t *testing.T) {
	out := execute(t, "analyze", "[[,2,,4],[,2,,],[8,4,4,],[2048,64,32,]]",
		"--seed", "1", "--log-level", "error", "--ply", "2", "--top", "3")

	assert.Contains(t, out, "Board: [[,2,,4],[,2,,],[8,4,4,],[2048,64,32,]]")
	assert.Contains(t, out, "Search: "+eval.Default+", ply 2")
	assert.Regexp(t, `tile-count\s+-9\n`, out)
	assert.Regexp(t, `sum-exponents\s+-33\n`, out)
	assert.Contains(t, out, "Player chooses: ")
	assert.Contains(t, out, "Generator chooses: ")
}

func TestAnalyzeCommandSizeMismatch(t *testing.T) {
	out := execute(t, "analyze", "[[2,4],[8,16]]", "--eval", "tile-count", "--log-level", "error")

	assert.Regexp(t, `zigzag-linear-4x4\s+n/a`, out)
	assert.Regexp(t, `tile-count\s+-4\n`, out)
	assert.Contains(t, out, "Player: no move, the game is over")
	assert.Contains(t, out, "Generator: the board is full")
}

func TestAnalyzeCommandPlyZero(t *testing.T) {
	out := execute(t, "analyze", "[[,2,,4],[,2,,],[8,4,4,],[2048,64,32,]]",
		"--log-level", "error", "--ply", "0")

	assert.Contains(t, out, ", ply 0\n")
	assert.Contains(t, out, "Player chooses: left\n")
	assert.Contains(t, out, "Generator chooses: 2@(0,0)\n")
}

func TestEvalsCommand(t *testing.T) {
	out := execute(t, "evals")

	for _, name := range eval.Registry.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "(default)")
}

func TestConfigCommand(t *testing.T) {
	out := execute(t, "config", "--seed", "42", "--strength", "hard")

	assert.Contains(t, out, "seed: 42")
	assert.Contains(t, out, "ply: 5")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{-2490, "-2490"},
		{eval.GameOver, "loss in 0"},
		{eval.GameOver - 3, "loss in 3"},
		{-eval.GameOver + 2, "win in 2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.v))
	}
}

func TestSummarize(t *testing.T) {
	results := []engine.Result{
		{Moves: 100, MaxTile: game.NewTile(7), Final: game.MustParse("[[128]]")},
		{Moves: 300, MaxTile: game.NewTile(11), Final: game.MustParse("[[2048]]")},
		{Moves: 200, MaxTile: game.NewTile(7), Final: game.MustParse("[[128,2]]")},
	}

	s := summarize(results, 2048)

	assert.Equal(t, 3, s.Games)
	assert.Equal(t, 1, s.Wins)
	assert.InDelta(t, 200.0, s.AvgMoves, 1e-9)
	assert.Equal(t, 300, s.MaxMoves)
	assert.Equal(t, 300, s.Best.Moves)
	assert.Equal(t, map[uint64]int{128: 2, 2048: 1}, s.TileCount)

	var out bytes.Buffer
	printSummary(&out, s, time.Second)
	text := out.String()
	assert.Contains(t, text, "Wins:       1 (33.3% reached 2048)")
	assert.Contains(t, text, "Moves:      avg 200.0, max 300")
	assert.Less(t, strings.Index(text, "2048      1"), strings.Index(text, "128       2"))
}

func TestSummarizeEmpty(t *testing.T) {
	s := summarize(nil, 2048)
	assert.Zero(t, s.Games)

	var out bytes.Buffer
	printSummary(&out, s, 0)
	assert.NotContains(t, out.String(), "Wins")
}

func TestPlayBatch(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.Player.Kind = config.KindRandom
	logger := log.New(io.Discard)
	opts := engine.RunOptions{InitialTiles: 2}

	first, err := playBatch(context.Background(), cfg, logger, 4, 2, opts)
	require.NoError(t, err)
	require.Len(t, first, 4)
	for _, r := range first {
		assert.True(t, r.Final.IsOver())
		assert.Positive(t, r.Moves)
	}

	second, err := playBatch(context.Background(), cfg, logger, 4, 4, opts)
	require.NoError(t, err)
	for i := range first {
		assert.Equal(t, first[i].Moves, second[i].Moves)
		assert.True(t, first[i].Final.Equal(second[i].Final))
	}
}

func TestPlayBatchCancelled(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.Player.Kind = config.KindRandom
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := playBatch(ctx, cfg, log.New(io.Discard), 2, 1, engine.RunOptions{InitialTiles: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
