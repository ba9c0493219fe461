// twenty48 plays 2048 in the terminal, by hand or with a negamax AI.
//
// Usage:
//
//	twenty48 play              - Play with the keyboard against the generator
//	twenty48 watch             - Watch the AI play
//	twenty48 bench             - Play many AI games headless and summarise them
//	twenty48 analyze <board>   - Score a board and show the AI's choices
//	twenty48 evals             - List evaluation functions
//	twenty48 config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.twenty48, ./configs)
//	--seed <value>       - RNG seed for reproducible games
//	--log-level <level>  - debug, info, warn or error
//	--strength <preset>  - easy, normal or hard search depth
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagStrength string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "2048 with a negamax AI",
	Long: `twenty48 is a 2048 rules engine with an adversarial search AI.

The AI can play the moves, place the tiles, or both.

Available commands:
  play     - Play with the keyboard
  watch    - Watch the AI play
  bench    - Run headless AI games in parallel
  analyze  - Score a board and show the AI's choices
  evals    - List evaluation functions
  config   - Print the effective configuration

Examples:
  twenty48 play
  twenty48 watch --strength hard
  twenty48 bench --games 50 --parallel 8
  twenty48 analyze "[[,2,,4],[,2,,],[8,4,4,],[2048,64,32,]]"`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, or time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagStrength, "strength", "", "Search depth preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(evalsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagStrength != "" {
		if err := config.ApplyStrength(&cfg, config.Strength(flagStrength)); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. In the terminal UI stderr is
// taken, so without a log file the logger discards everything.
func newLogger(cfg config.LogConfig, interactive bool) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
		}
		w = f
		closeFn = f.Close
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "twenty48",
		Level:           level,
	})
	return logger, closeFn, nil
}
