package main

import (
	"fmt"
	"time"

	"noggin/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyGames bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent noggin runs",
	Long: `Show the most recent runs from the ledger, newest first. Each entry
lists when the run started, the command, how long it took, and a short
summary. With --games, finished game outcomes are listed under their
run.

Browsing history does not itself create a ledger entry.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of runs to show (defaults to config)")
	historyCmd.Flags().BoolVar(&historyGames, "games", false, "also list game results per run")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit := cfg.GetHistoryLimit()
	if cmd.Flags().Changed("limit") {
		limit = historyLimit
	}

	l, err := ledger.Open(cfg.DatabasePath(workspace))
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer l.Close()

	runs, err := l.Recent(limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("Last %d run(s):\n\n", len(runs))
	for i, run := range runs {
		fmt.Printf("%2d. %s  %-12s %8s  %s\n",
			i+1,
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			run.Command,
			run.Duration.Round(time.Millisecond),
			truncateStr(run.Summary, 48))

		if !historyGames {
			continue
		}
		games, err := l.Games(run.ID)
		if err != nil {
			return fmt.Errorf("failed to read game results: %w", err)
		}
		for _, g := range games {
			fmt.Printf("      %-12s %-5s in %d move(s)\n", g.Game, g.Outcome, g.Moves)
		}
	}
	return nil
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
