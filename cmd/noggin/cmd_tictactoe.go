package main

import (
	"fmt"
	"time"

	"noggin/cmd/noggin/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tictactoeCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Play tic-tac-toe against a minimax agent",
	Long: `Play tic-tac-toe against an agent that searches the full game tree
with minimax. The agent plays optimally, so the best you can do is a
draw.

Pick a side at the prompt; X always moves first.`,
	RunE: runTicTacToe,
}

func runTicTacToe(cmd *cobra.Command, args []string) error {
	started := time.Now()

	styles := ui.NewStyles(ui.ThemeFromName(cfg.UI.Theme))
	p := tea.NewProgram(ui.NewTicTacToe(styles), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tictactoe session failed: %w", err)
	}

	model, ok := final.(ui.TicTacToeModel)
	if !ok {
		logger.Warn("unexpected final model type", zap.String("command", "tictactoe"))
		return nil
	}

	results := model.Results()
	recordRun("tictactoe", args, started, fmt.Sprintf("played %d game(s)", len(results)), results)
	return nil
}
