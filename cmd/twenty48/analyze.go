package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/ai/eval"
	"github.com/vovakirdan/twenty48/internal/ai/search"
	"github.com/vovakirdan/twenty48/internal/game"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <board>",
	Short: "Score a board and show the AI's choices",
	Long: `Evaluate a board with every evaluation function, then run the minimax
search for both sides and print the value of each choice.

The board uses the textual form: rows of comma-separated tile values, empty
cells left blank.

Examples:
  twenty48 analyze "[[,2,,4],[,2,,],[8,4,4,],[2048,64,32,]]"
  twenty48 analyze "[[2,4],[,8]]" --eval tile-count --ply 4`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	flagAnalyzeEval string
	flagAnalyzePly  uint
	flagAnalyzeTop  int
)

func init() {
	analyzeCmd.Flags().StringVar(&flagAnalyzeEval, "eval", "", "Evaluation function for the search (default from config)")
	analyzeCmd.Flags().UintVar(&flagAnalyzePly, "ply", 0, "Search depth; 0 takes the first choice (default from config)")
	analyzeCmd.Flags().IntVar(&flagAnalyzeTop, "top", 5, "Placements to list")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := game.Parse(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log, false)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // best effort on exit

	name := cmp.Or(flagAnalyzeEval, cfg.Player.Eval)
	ply := cfg.Player.Ply
	if cmd.Flags().Changed("ply") {
		ply = flagAnalyzePly
	}
	fn, err := eval.Lookup(name)
	if err != nil {
		return err
	}
	m, err := search.New(fn, ply, search.WithWorkers(cfg.Player.Workers), search.WithLogger(logger))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Board: %s\n\n", s)
	printEvaluations(w, s)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Search: %s, ply %d\n\n", name, ply)
	if err := printMoves(w, m, s); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return printPlacements(w, m, s, flagAnalyzeTop)
}

func printEvaluations(w io.Writer, s *game.State) {
	infos := eval.Registry.List()
	width := 0
	for _, info := range infos {
		width = max(width, len(info.Name))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", width, "Evaluator", "Score")
	fmt.Fprintf(w, "  %-*s  %s\n", width, "---------", "-----")
	for _, info := range infos {
		fn, err := eval.Lookup(info.Name)
		if err != nil {
			continue
		}
		v, err := fn.Evaluate(s)
		switch {
		case errors.Is(err, eval.ErrSizeMismatch):
			fmt.Fprintf(w, "  %-*s  n/a (board size)\n", width, info.Name)
		case err != nil:
			fmt.Fprintf(w, "  %-*s  error: %v\n", width, info.Name, err)
		default:
			fmt.Fprintf(w, "  %-*s  %d\n", width, info.Name, v)
		}
	}
}

func printMoves(w io.Writer, m *search.Minimax, s *game.State) error {
	scores, err := m.ScoreMoves(s)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Fprintln(w, "Player: no move, the game is over")
		return nil
	}

	fmt.Fprintln(w, "  Move    Value")
	fmt.Fprintln(w, "  ----    -----")
	for _, sc := range scores {
		fmt.Fprintf(w, "  %-6s  %s\n", sc.Dir, formatValue(sc.Score))
	}

	d, _, err := m.Play(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Player chooses: %s\n", d)
	return nil
}

func printPlacements(w io.Writer, m *search.Minimax, s *game.State, top int) error {
	scores, err := m.ScorePlacements(s)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Fprintln(w, "Generator: the board is full")
		return nil
	}

	// Stable, so equal values keep enumeration order.
	slices.SortStableFunc(scores, func(a, b search.PlacementScore) int {
		return cmp.Compare(b.Score, a.Score)
	})

	fmt.Fprintln(w, "  Placement  Value")
	fmt.Fprintln(w, "  ---------  -----")
	for _, sc := range scores[:min(top, len(scores))] {
		fmt.Fprintf(w, "  %-9s  %s\n", sc.Placement, formatValue(sc.Score))
	}

	p, _, err := m.Generate(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Generator chooses: %s\n", p)
	return nil
}

// formatValue spells out game-over values, which are otherwise unreadable.
func formatValue(v int64) string {
	const window = 1 << 20
	switch {
	case v <= eval.GameOver && v > eval.GameOver-window:
		return fmt.Sprintf("loss in %d", eval.GameOver-v)
	case v >= -eval.GameOver && v < -eval.GameOver+window:
		return fmt.Sprintf("win in %d", v+eval.GameOver)
	}
	return fmt.Sprintf("%d", v)
}
