package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twenty48/internal/ai"
	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with the keyboard",
	Long: `Play 2048 with the keyboard. New tiles come from the configured
generator, which may be the minimax AI playing against you.

Controls:
  Arrows/WASD/HJKL  - Move
  P                 - Pause
  R                 - Restart
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  twenty48 play
  twenty48 play --generator minimax --strength hard`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var flagGenerator string

func init() {
	playCmd.Flags().StringVar(&flagGenerator, "generator", "", "Generator kind: random or minimax")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Player.Kind = config.KindHuman
	if flagGenerator != "" {
		cfg.Generator.Kind = flagGenerator
	}
	return runTUI(cfg)
}

// runTUI starts the game screen for cfg.
func runTUI(cfg config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the game screen needs a terminal; try 'twenty48 bench' instead")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, true)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // best effort on exit

	player, err := ai.NewPlayer(cfg.Player, cfg.Seed, logger)
	if err != nil {
		return err
	}
	generator, err := ai.NewGenerator(cfg.Generator, cfg.Seed+1, logger)
	if err != nil {
		return err
	}
	initial, err := cfg.State()
	if err != nil {
		return err
	}

	logger.Info("starting", "player", cfg.Player.Kind, "generator", cfg.Generator.Kind, "seed", cfg.Seed)
	return tui.Run(tui.Options{
		Player:       player,
		Generator:    generator,
		Initial:      initial,
		InitialTiles: cfg.Board.InitialTiles,
		Cycle:        cfg.Display.Cycle,
		HumanDelay:   cfg.Display.HumanDelay,
		Logger:       logger,
	})
}
