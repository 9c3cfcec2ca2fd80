package ledger_test

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"noggin/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "noggin.db")

	t.Run("SurvivesReopen", func(t *testing.T) {
		l, err := ledger.Open(dbPath)
		require.NoError(t, err)

		run := &ledger.Run{Command: "crossword", Summary: "solved 4 words"}
		require.NoError(t, l.Record(run))
		require.NoError(t, l.RecordGame(&ledger.GameResult{
			RunID:   run.ID,
			Game:    "tictactoe",
			Outcome: "draw",
			Moves:   9,
		}))
		require.NoError(t, l.Close())

		l2, err := ledger.Open(dbPath)
		require.NoError(t, err)
		defer l2.Close()

		runs, err := l2.Recent(10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "crossword", runs[0].Command)
		assert.Equal(t, "solved 4 words", runs[0].Summary)

		games, err := l2.Games(run.ID)
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "draw", games[0].Outcome)
	})

	t.Run("ConcurrentWrites", func(t *testing.T) {
		l, err := ledger.Open(dbPath)
		require.NoError(t, err)
		defer l.Close()

		var wg sync.WaitGroup
		numWorkers := 8
		runsPerWorker := 5

		base := time.Now()
		for i := 0; i < numWorkers; i++ {
			wg.Add(1)
			go func(worker int) {
				defer wg.Done()
				for j := 0; j < runsPerWorker; j++ {
					err := l.Record(&ledger.Run{
						Command:   fmt.Sprintf("worker-%d", worker),
						StartedAt: base.Add(time.Duration(worker*runsPerWorker+j) * time.Second),
					})
					assert.NoError(t, err)
				}
			}(i)
		}
		wg.Wait()

		runs, err := l.Recent(1000)
		require.NoError(t, err)
		// One earlier run from the reopen subtest plus everything written here.
		assert.Len(t, runs, numWorkers*runsPerWorker+1)
	})
}
