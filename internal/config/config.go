// Package config holds the noggin configuration: a YAML file under
// .noggin/ in the workspace, overridable through NOGGIN_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all noggin configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Solver defaults
	PageRank    PageRankConfig    `yaml:"pagerank"`
	Minesweeper MinesweeperConfig `yaml:"minesweeper"`
	Crossword   CrosswordConfig   `yaml:"crossword"`

	// Run history
	Ledger LedgerConfig `yaml:"ledger"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	File   string `yaml:"file"`   // empty means stderr only
}

// PageRankConfig carries the random-surfer parameters.
type PageRankConfig struct {
	Damping       float64 `yaml:"damping"`
	Samples       int     `yaml:"samples"`
	Epsilon       float64 `yaml:"epsilon"`
	MaxIterations int     `yaml:"max_iterations"`
}

// MinesweeperConfig sets the default board.
type MinesweeperConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Mines  int `yaml:"mines"`
}

// CrosswordConfig controls the crossword command.
type CrosswordConfig struct {
	WatchDebounce string `yaml:"watch_debounce"`
}

// LedgerConfig configures the run-history database.
type LedgerConfig struct {
	DatabasePath string `yaml:"database_path"` // empty means .noggin/noggin.db under the workspace
	HistoryLimit int    `yaml:"history_limit"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme"` // auto, light, dark
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "noggin",
		Version: "0.4.0",

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},

		PageRank: PageRankConfig{
			Damping: 0.85,
			Samples: 10000,
			Epsilon: 0.001,
		},

		Minesweeper: MinesweeperConfig{
			Height: 8,
			Width:  8,
			Mines:  8,
		},

		Crossword: CrosswordConfig{
			WatchDebounce: "400ms",
		},

		Ledger: LedgerConfig{
			HistoryLimit: 20,
		},

		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("NOGGIN_DB_PATH"); path != "" {
		c.Ledger.DatabasePath = path
	}
	if level := os.Getenv("NOGGIN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if theme := os.Getenv("NOGGIN_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// DatabasePath resolves the ledger database location, defaulting to
// .noggin/noggin.db under the workspace root.
func (c *Config) DatabasePath(workspaceRoot string) string {
	if c.Ledger.DatabasePath != "" {
		return c.Ledger.DatabasePath
	}
	return filepath.Join(workspaceRoot, ".noggin", "noggin.db")
}

// GetWatchDebounce returns the crossword watch debounce as a duration.
func (c *Config) GetWatchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Crossword.WatchDebounce)
	if err != nil || d <= 0 {
		return 400 * time.Millisecond
	}
	return d
}

// GetHistoryLimit returns how many ledger rows history shows by default.
func (c *Config) GetHistoryLimit() int {
	if c.Ledger.HistoryLimit <= 0 {
		return 20
	}
	return c.Ledger.HistoryLimit
}

// ValidThemes lists the supported UI themes.
var ValidThemes = []string{"auto", "light", "dark"}

// ValidLogLevels lists the supported logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if d := c.PageRank.Damping; d <= 0 || d > 1 {
		return fmt.Errorf("pagerank damping must be in (0, 1], got %v", d)
	}
	if c.PageRank.Samples < 1 {
		return fmt.Errorf("pagerank samples must be positive, got %d", c.PageRank.Samples)
	}
	m := c.Minesweeper
	if m.Height < 1 || m.Width < 1 {
		return fmt.Errorf("minesweeper board must be at least 1x1, got %dx%d", m.Height, m.Width)
	}
	if m.Mines < 1 || m.Mines >= m.Height*m.Width {
		return fmt.Errorf("minesweeper mines must be in [1, %d), got %d", m.Height*m.Width, m.Mines)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// DefaultConfigPath returns the config file location under a workspace root.
func DefaultConfigPath(workspaceRoot string) string {
	return filepath.Join(workspaceRoot, ".noggin", "config.yaml")
}

// FindWorkspaceRoot walks up from the working directory looking for a
// .noggin directory or a go.mod, falling back to the working directory.
func FindWorkspaceRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	originalDir := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".noggin")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return originalDir, nil
}
