package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/twenty48/internal/ai"
	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/engine"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Play many AI games headless and summarise them",
	Long: `Play a batch of games between the configured AI player and generator
without a screen, several at a time, then print a summary.

Game i uses seeds derived from the global seed, so a run is repeatable.

Examples:
  twenty48 bench
  twenty48 bench --games 100 --parallel 8 --strength easy
  twenty48 bench --max-moves 500 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

var (
	flagBenchGames    int
	flagBenchParallel int
	flagBenchMaxMoves int
	flagBenchWinTile  uint64
)

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 20, "Number of games")
	benchCmd.Flags().IntVar(&flagBenchParallel, "parallel", runtime.NumCPU(), "Games played at once")
	benchCmd.Flags().IntVar(&flagBenchMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = no limit)")
	benchCmd.Flags().Uint64Var(&flagBenchWinTile, "win-tile", 2048, "Tile that counts as a win")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Player.Kind == config.KindHuman {
		cfg.Player.Kind = config.KindMinimax
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flagBenchGames < 1 || flagBenchParallel < 1 {
		return errors.New("--games and --parallel must be positive")
	}

	logger, closeLog, err := newLogger(cfg.Log, false)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // best effort on exit

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	results, err := playBatch(ctx, cfg, logger, flagBenchGames, flagBenchParallel,
		engine.RunOptions{InitialTiles: cfg.Board.InitialTiles, MaxMoves: flagBenchMaxMoves})
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), summarize(results, flagBenchWinTile), time.Since(start))
	return nil
}

// playBatch plays n games, at most parallel at a time. Results are in game
// order.
func playBatch(ctx context.Context, cfg config.Config, logger *log.Logger, n, parallel int, opts engine.RunOptions) ([]engine.Result, error) {
	initial, err := cfg.State()
	if err != nil {
		return nil, err
	}

	results := make([]engine.Result, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range n {
		g.Go(func() error {
			gameLog := logger.With("game", i)
			seed := cfg.Seed + 2*int64(i)
			player, err := ai.NewPlayer(cfg.Player, seed, gameLog)
			if err != nil {
				return err
			}
			generator, err := ai.NewGenerator(cfg.Generator, seed+1, gameLog)
			if err != nil {
				return err
			}

			gm := engine.New(initial,
				engine.WithPlayer(player),
				engine.WithGenerator(generator),
				engine.WithLogger(gameLog),
			)
			res, err := gm.Run(ctx, opts)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type benchSummary struct {
	Games     int
	Wins      int
	WinTile   uint64
	AvgMoves  float64
	MaxMoves  int
	Best      engine.Result
	TileCount map[uint64]int // games by largest tile reached
}

func summarize(results []engine.Result, winTile uint64) benchSummary {
	if len(results) == 0 {
		return benchSummary{WinTile: winTile, TileCount: map[uint64]int{}}
	}
	moves := lo.Map(results, func(r engine.Result, _ int) int { return r.Moves })
	tiles := lo.Map(results, func(r engine.Result, _ int) uint64 { return r.MaxTile.Value() })

	return benchSummary{
		Games:    len(results),
		Wins:     lo.CountBy(tiles, func(v uint64) bool { return v >= winTile }),
		WinTile:  winTile,
		AvgMoves: float64(lo.Sum(moves)) / float64(len(results)),
		MaxMoves: lo.Max(moves),
		Best: lo.MaxBy(results, func(a, b engine.Result) bool {
			return a.MaxTile > b.MaxTile || (a.MaxTile == b.MaxTile && a.Moves > b.Moves)
		}),
		TileCount: lo.CountValues(tiles),
	}
}

func printSummary(w io.Writer, s benchSummary, elapsed time.Duration) {
	fmt.Fprintf(w, "Games:      %d in %s\n", s.Games, elapsed.Round(time.Millisecond))
	if s.Games == 0 {
		return
	}
	fmt.Fprintf(w, "Wins:       %d (%.1f%% reached %d)\n", s.Wins, 100*float64(s.Wins)/float64(s.Games), s.WinTile)
	fmt.Fprintf(w, "Moves:      avg %.1f, max %d\n", s.AvgMoves, s.MaxMoves)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-8s  %s\n", "Max tile", "Games")
	fmt.Fprintf(w, "  %-8s  %s\n", "--------", "-----")
	tiles := lo.Keys(s.TileCount)
	slices.Sort(tiles)
	for _, t := range slices.Backward(tiles) {
		fmt.Fprintf(w, "  %-8d  %d\n", t, s.TileCount[t])
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best game (%d moves):\n  %s\n", s.Best.Moves, s.Best.Final)
}
