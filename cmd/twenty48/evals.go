package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/ai/eval"
)

var evalsCmd = &cobra.Command{
	Use:   "evals",
	Short: "List evaluation functions",
	Long:  `Shows every evaluation function the minimax search can use.`,
	Args:  cobra.NoArgs,
	Run:   runEvals,
}

func runEvals(cmd *cobra.Command, args []string) {
	infos := eval.Registry.List()
	w := cmd.OutOrStdout()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, info := range infos {
		if len(info.Name) > maxNameLen {
			maxNameLen = len(info.Name)
		}
	}

	fmt.Fprintln(w, "Evaluation functions:")
	fmt.Fprintln(w)

	// Print header
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, info := range infos {
		marker := ""
		if info.Name == eval.Default {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %-*s  %s%s\n", maxNameLen, info.Name, info.Title, marker)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Select one with 'player.eval' in the config or 'twenty48 watch --eval <name>'.")
}
