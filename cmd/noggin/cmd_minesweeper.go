package main

import (
	"fmt"
	"math/rand"
	"time"

	"noggin/cmd/noggin/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	minesweeperHeight int
	minesweeperWidth  int
	minesweeperMines  int
	minesweeperSeed   int64
)

var minesweeperCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Play minesweeper with a propositional-logic agent on call",
	Long: `Play minesweeper on a terminal board. Every reveal feeds a knowledge
agent that reasons over sentences of the form {cells} = count; press 'a'
at any point and the agent plays for you, picking a cell it has proven
safe or guessing when it has no proof.

Board dimensions default to the config (8x8 with 8 mines).`,
	RunE: runMinesweeper,
}

func init() {
	minesweeperCmd.Flags().IntVar(&minesweeperHeight, "height", 0, "board height (defaults to config)")
	minesweeperCmd.Flags().IntVar(&minesweeperWidth, "width", 0, "board width (defaults to config)")
	minesweeperCmd.Flags().IntVar(&minesweeperMines, "mines", 0, "mine count (defaults to config)")
	minesweeperCmd.Flags().Int64Var(&minesweeperSeed, "seed", 0, "random seed for mine placement (0 = clock)")
}

func runMinesweeper(cmd *cobra.Command, args []string) error {
	started := time.Now()

	height := cfg.Minesweeper.Height
	width := cfg.Minesweeper.Width
	mines := cfg.Minesweeper.Mines
	if cmd.Flags().Changed("height") {
		height = minesweeperHeight
	}
	if cmd.Flags().Changed("width") {
		width = minesweeperWidth
	}
	if cmd.Flags().Changed("mines") {
		mines = minesweeperMines
	}

	var rng *rand.Rand
	if cmd.Flags().Changed("seed") {
		rng = rand.New(rand.NewSource(minesweeperSeed))
	}

	styles := ui.NewStyles(ui.ThemeFromName(cfg.UI.Theme))
	model, err := ui.NewMinesweeper(styles, height, width, mines, rng)
	if err != nil {
		return fmt.Errorf("failed to set up board: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("minesweeper session failed: %w", err)
	}

	finalModel, ok := final.(ui.MinesweeperModel)
	if !ok {
		logger.Warn("unexpected final model type", zap.String("command", "minesweeper"))
		return nil
	}

	results := finalModel.Results()
	summary := fmt.Sprintf("played %d game(s) on %dx%d", len(results), height, width)
	recordRun("minesweeper", args, started, summary, results)
	return nil
}
