package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/twenty48/internal/game"
)

func TestEmbeddedDefaultsMatchBuiltIn(t *testing.T) {
	cfg, err := parse(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
board:
  initial: "[[2,,],[,,4]]"
player:
  kind: random
display:
  cycle: 2s
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, KindRandom, cfg.Player.Kind)
	assert.Equal(t, 2*time.Second, cfg.Display.Cycle)
	assert.Equal(t, KindRandom, cfg.Generator.Kind, "unset values keep defaults")
	assert.Equal(t, 2, cfg.Board.InitialTiles)

	s, err := cfg.State()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, 3, s.Width())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [unclosed"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero height", func(c *Config) { c.Board.Height = 0 }},
		{"bad initial board", func(c *Config) { c.Board.Initial = "[[3]]" }},
		{"negative initial tiles", func(c *Config) { c.Board.InitialTiles = -1 }},
		{"unknown player", func(c *Config) { c.Player.Kind = "oracle" }},
		{"human generator", func(c *Config) { c.Generator.Kind = KindHuman }},
		{"unknown eval", func(c *Config) { c.Player.Eval = "vibes" }},
		{"negative workers", func(c *Config) { c.Player.Workers = -2 }},
		{"spawn4 above one", func(c *Config) { c.Generator.Spawn4 = 1.5 }},
		{"zero cycle", func(c *Config) { c.Display.Cycle = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Generator.Kind = KindRandom
	cfg.Generator.Eval = "ignored for random agents"
	assert.NoError(t, cfg.Validate())
}

func TestStrength(t *testing.T) {
	tests := []struct {
		strength Strength
		ply      uint
	}{
		{StrengthEasy, 1},
		{StrengthNormal, 3},
		{StrengthHard, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.strength), func(t *testing.T) {
			cfg := Default()
			require.NoError(t, ApplyStrength(&cfg, tt.strength))
			assert.Equal(t, tt.ply, cfg.Player.Ply)
			assert.Equal(t, tt.ply, cfg.Generator.Ply)
		})
	}

	cfg := Default()
	assert.ErrorIs(t, ApplyStrength(&cfg, "godlike"), game.ErrInvalidArgument)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99
	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
