package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"noggin/internal/crossword"
	"noggin/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	crosswordOutput string
	crosswordWatch  bool
)

var crosswordCmd = &cobra.Command{
	Use:   "crossword <structure-file> <words-file>",
	Short: "Generate a crossword from a grid structure and a word list",
	Long: `Generate a crossword puzzle. The structure file describes the grid:
underscores mark open cells, anything else is blocked. The words file
lists one candidate word per line.

Generation treats the grid as a constraint satisfaction problem: node
consistency trims words of the wrong length, AC-3 propagates overlap
constraints, and backtracking search fills what remains.

With --watch the command stays running and regenerates whenever either
input file changes. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(2),
	RunE: runCrossword,
}

func init() {
	crosswordCmd.Flags().StringVarP(&crosswordOutput, "output", "o", "", "also save the grid as a PNG image")
	crosswordCmd.Flags().BoolVar(&crosswordWatch, "watch", false, "regenerate when the input files change")
}

func runCrossword(cmd *cobra.Command, args []string) error {
	started := time.Now()
	structurePath, wordsPath := args[0], args[1]

	summary, err := generateCrossword(structurePath, wordsPath)
	if errors.Is(err, crossword.ErrNoSolution) {
		// An unsolvable puzzle is an answer, not a failure.
		err = nil
	}
	if !crosswordWatch {
		recordRun("crossword", args, started, summary, nil)
		return err
	}
	if err != nil {
		return err
	}

	// Watch mode: stay up and regenerate on every settled change.
	watcher, err := watch.New(logger, []string{structurePath, wordsPath}, cfg.GetWatchDebounce(), func(paths []string) {
		logger.Debug("inputs changed", zap.Strings("paths", paths))
		fmt.Printf("\n── regenerating at %s ──\n", time.Now().Format("15:04:05"))
		if _, err := generateCrossword(structurePath, wordsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to set up watcher: %w", err)
	}
	if err := watcher.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Stop()

	fmt.Println("\nWatching for changes. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	recordRun("crossword", args, started, summary+" (watch mode)", nil)
	return nil
}

// generateCrossword solves once and prints the grid. A puzzle with no
// solution is reported, not fatal, so watch mode can keep going.
func generateCrossword(structurePath, wordsPath string) (string, error) {
	puzzle, err := crossword.LoadPuzzle(structurePath, wordsPath)
	if err != nil {
		return "failed to load puzzle", err
	}

	gen := crossword.NewGenerator(puzzle)
	assignment, err := gen.Solve()
	if errors.Is(err, crossword.ErrNoSolution) {
		fmt.Println("No solution.")
		return "no solution", err
	}
	if err != nil {
		return "generation failed", err
	}

	fmt.Print(crossword.Render(puzzle, assignment))

	if crosswordOutput != "" {
		if err := crossword.SavePNG(puzzle, assignment, crosswordOutput); err != nil {
			return "failed to save image", fmt.Errorf("failed to save image: %w", err)
		}
		logger.Info("Image saved", zap.String("path", crosswordOutput))
	}
	return fmt.Sprintf("solved %d words", len(assignment)), nil
}
