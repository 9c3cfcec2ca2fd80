// Package ledger persists a history of noggin runs in SQLite.
// Every CLI invocation records one Run row; the game commands additionally
// record a GameResult per finished game. The history command reads it back.
package ledger

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is one recorded CLI invocation.
type Run struct {
	ID        string
	Command   string
	Args      []string
	StartedAt time.Time
	Duration  time.Duration
	Summary   string
}

// GameResult is the outcome of a single finished game, tied to its run.
type GameResult struct {
	RunID   string
	Game    string
	Outcome string
	Moves   int
}

// Ledger manages the run history database.
type Ledger struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// Open creates or opens the ledger database at the given path.
// Parent directories are created as needed; ":memory:" is accepted for tests.
func Open(path string) (*Ledger, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps WAL writes serialized and makes :memory:
	// databases visible across queries.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	_, _ = db.Exec("PRAGMA busy_timeout = 5000")
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	l := &Ledger{db: db, dbPath: path}
	if err := l.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return l, nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Path returns the database file path.
func (l *Ledger) Path() string {
	return l.dbPath
}

// initSchema creates the database schema.
func (l *Ledger) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		command TEXT NOT NULL,
		args_json TEXT,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_runs_command ON runs(command);

	CREATE TABLE IF NOT EXISTS game_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		game TEXT NOT NULL,
		outcome TEXT NOT NULL,
		moves INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);
	CREATE INDEX IF NOT EXISTS idx_game_results_run ON game_results(run_id);
	CREATE INDEX IF NOT EXISTS idx_game_results_game ON game_results(game);
	`

	if _, err := l.db.Exec(schema); err != nil {
		return err
	}

	return l.runMigrations()
}

// migration adds a column missing from databases created by older versions.
type migration struct {
	Table  string
	Column string
	Def    string
}

// pendingMigrations lists schema upgrades for existing databases.
var pendingMigrations = []migration{
	// Run summaries were added after the first release.
	{"runs", "summary", "TEXT DEFAULT ''"},
}

// runMigrations applies column additions for databases created before the
// column existed. Failures are tolerated; the column may already be present
// under a different definition.
func (l *Ledger) runMigrations() error {
	for _, m := range pendingMigrations {
		if !l.tableExists(m.Table) {
			continue
		}
		if l.columnExists(m.Table, m.Column) {
			continue
		}
		query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.Table, m.Column, m.Def)
		_, _ = l.db.Exec(query)
	}
	return nil
}

// tableExists checks for a table in sqlite_master.
func (l *Ledger) tableExists(table string) bool {
	var count int
	err := l.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&count)
	return err == nil && count > 0
}

// columnExists checks if a column exists using PRAGMA table_info.
func (l *Ledger) columnExists(table, column string) bool {
	rows, err := l.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			continue
		}
		if name == column {
			return true
		}
	}
	return false
}

// Record stores a run. A missing ID or StartedAt is filled in, and the
// filled-in values are written back to the caller's struct.
func (l *Ledger) Record(run *Run) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	argsJSON, _ := json.Marshal(run.Args)

	_, err := l.db.Exec(`
		INSERT INTO runs (id, command, args_json, started_at, duration_ms, summary)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Command, string(argsJSON), run.StartedAt, run.Duration.Milliseconds(), run.Summary)

	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// RecordGame stores a game result against an existing run.
func (l *Ledger) RecordGame(result *GameResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if result.RunID == "" {
		return fmt.Errorf("game result requires a run id")
	}

	_, err := l.db.Exec(`
		INSERT INTO game_results (run_id, game, outcome, moves)
		VALUES (?, ?, ?, ?)
	`, result.RunID, result.Game, result.Outcome, result.Moves)

	if err != nil {
		return fmt.Errorf("failed to record game result: %w", err)
	}
	return nil
}

// Recent retrieves the most recent runs, newest first.
// A non-positive n defaults to 20.
func (l *Ledger) Recent(n int) ([]Run, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 {
		n = 20
	}

	rows, err := l.db.Query(`
		SELECT id, command, args_json, started_at, duration_ms, summary
		FROM runs
		ORDER BY started_at DESC, id
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var argsJSON sql.NullString
		var durationMs int64
		if err := rows.Scan(&run.ID, &run.Command, &argsJSON, &run.StartedAt, &durationMs, &run.Summary); err != nil {
			continue
		}
		run.Duration = time.Duration(durationMs) * time.Millisecond
		if argsJSON.Valid && argsJSON.String != "" {
			json.Unmarshal([]byte(argsJSON.String), &run.Args)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Games retrieves the game results recorded for a run.
func (l *Ledger) Games(runID string) ([]GameResult, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rows, err := l.db.Query(`
		SELECT run_id, game, outcome, moves
		FROM game_results
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		if err := rows.Scan(&r.RunID, &r.Game, &r.Outcome, &r.Moves); err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
