package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the AI play",
	Long: `Watch an AI player take turns with the generator. Each cycle is one
move followed by one new tile; the move gets four fifths of the cycle.

Controls:
  P         - Pause
  R         - Restart
  ?         - Toggle help
  Q/Ctrl+C  - Quit

Examples:
  twenty48 watch
  twenty48 watch --player random --cycle 100ms
  twenty48 watch --eval gradient-exponential-4x4 --strength hard`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

var (
	flagWatchPlayer string
	flagWatchEval   string
	flagWatchCycle  time.Duration
)

func init() {
	watchCmd.Flags().StringVar(&flagWatchPlayer, "player", "", "Player kind: random or minimax")
	watchCmd.Flags().StringVar(&flagWatchEval, "eval", "", "Evaluation function for a minimax player")
	watchCmd.Flags().DurationVar(&flagWatchCycle, "cycle", 0, "Time per move and tile, e.g. 250ms")
	watchCmd.Flags().StringVar(&flagGenerator, "generator", "", "Generator kind: random or minimax")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagWatchPlayer != "" {
		cfg.Player.Kind = flagWatchPlayer
	}
	if cfg.Player.Kind == config.KindHuman {
		return errors.New("watch needs an AI player; use 'twenty48 play' to play yourself")
	}
	if flagWatchEval != "" {
		cfg.Player.Eval = flagWatchEval
	}
	if flagGenerator != "" {
		cfg.Generator.Kind = flagGenerator
	}
	if flagWatchCycle > 0 {
		cfg.Display.Cycle = flagWatchCycle
	}
	return runTUI(cfg)
}
