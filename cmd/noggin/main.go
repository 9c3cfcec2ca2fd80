package main

import (
	"fmt"
	"os"
	"time"

	"noggin/internal/config"
	"noggin/internal/ledger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string

	// Logger
	logger *zap.Logger

	// Config loaded in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "noggin",
	Short: "noggin - search, inference, and language toys from classic AI",
	Long: `noggin is a command-line playground for classic AI algorithms.

It bundles a PageRank crawler and ranker, adversarial tic-tac-toe, a
propositional-logic minesweeper agent, a crossword constraint solver, and a
chart parser for a toy English grammar. Runs are recorded to a local SQLite
ledger; see 'noggin history'.

Run 'noggin explain <topic>' for a primer on any of the algorithms.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if workspace == "" {
			root, err := config.FindWorkspaceRoot()
			if err != nil {
				return fmt.Errorf("failed to resolve workspace: %w", err)
			}
			workspace = root
		}

		path := configPath
		if path == "" {
			path = config.DefaultConfigPath(workspace)
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// Initialize logger
		zapCfg := zap.NewProductionConfig()
		if cfg.Logging.Format == "text" {
			zapCfg.Encoding = "console"
		}
		if level, perr := zapcore.ParseLevel(cfg.Logging.Level); perr == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(level)
		}
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if cfg.Logging.File != "" {
			zapCfg.OutputPaths = []string{cfg.Logging.File}
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: walk up to .noggin or go.mod)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.noggin/config.yaml)")

	// Add commands to root
	rootCmd.AddCommand(pagerankCmd)
	rootCmd.AddCommand(tictactoeCmd)
	rootCmd.AddCommand(minesweeperCmd)
	rootCmd.AddCommand(crosswordCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(explainCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// recordRun appends this invocation to the run ledger, attaching any finished
// game results. The ledger is advisory; failures are logged, never fatal.
func recordRun(command string, args []string, startedAt time.Time, summary string, games []ledger.GameResult) {
	led, err := ledger.Open(cfg.DatabasePath(workspace))
	if err != nil {
		logger.Warn("ledger unavailable", zap.Error(err))
		return
	}
	defer led.Close()

	run := &ledger.Run{
		Command:   command,
		Args:      args,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Summary:   summary,
	}
	if err := led.Record(run); err != nil {
		logger.Warn("failed to record run", zap.Error(err))
		return
	}
	for i := range games {
		games[i].RunID = run.ID
		if err := led.RecordGame(&games[i]); err != nil {
			logger.Warn("failed to record game result", zap.Error(err))
		}
	}
}
