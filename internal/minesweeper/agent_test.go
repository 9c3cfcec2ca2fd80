package minesweeper

import (
	"math/rand"
	"testing"
)

func cellsEqual(t *testing.T, got []Cell, want ...Cell) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAddKnowledgeForcesMine(t *testing.T) {
	// On a 1x3 board, revealing (0,0) with count 1 leaves (0,1) as the only
	// candidate, so it must be a mine.
	a := NewAgent(1, 3)
	a.AddKnowledge(Cell{0, 0}, 1)
	cellsEqual(t, a.KnownMines(), Cell{0, 1})
}

func TestAddKnowledgeZeroMarksNeighborsSafe(t *testing.T) {
	a := NewAgent(3, 3)
	a.AddKnowledge(Cell{1, 1}, 0)
	if got := len(a.KnownSafes()); got != 9 {
		t.Errorf("%d known safes, want all 9 cells", got)
	}
}

func TestSubsetInference(t *testing.T) {
	// {(0,0) (0,1)} = 1 inside {(0,0) (0,1) (0,2)} = 2 forces (0,2) to be
	// a mine.
	a := NewAgent(1, 4)
	a.knowledge = append(a.knowledge,
		NewSentence([]Cell{{0, 0}, {0, 1}}, 1),
		NewSentence([]Cell{{0, 0}, {0, 1}, {0, 2}}, 2),
	)
	a.infer()
	cellsEqual(t, a.KnownMines(), Cell{0, 2})
}

func TestInferenceReachesFixedPoint(t *testing.T) {
	// {A B} = 1, {B C} = 1, {A B C} = 1: the subset differences prove A and
	// C safe, which collapses the first sentence to {B} = 1 and convicts B.
	// A single inference pass cannot see that far.
	A, B, C := Cell{0, 0}, Cell{0, 1}, Cell{0, 2}
	a := NewAgent(1, 3)
	a.knowledge = append(a.knowledge,
		NewSentence([]Cell{A, B}, 1),
		NewSentence([]Cell{B, C}, 1),
		NewSentence([]Cell{A, B, C}, 1),
	)
	a.infer()

	cellsEqual(t, a.KnownMines(), B)
	cellsEqual(t, a.KnownSafes(), A, C)
}

func TestMarkMinePropagates(t *testing.T) {
	a := NewAgent(2, 2)
	s := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)
	a.knowledge = append(a.knowledge, s)

	a.MarkMine(Cell{0, 0})
	if s.Cells[Cell{0, 0}] || s.Count != 0 {
		t.Errorf("sentence not updated by MarkMine: %v", s)
	}
}

func TestSafeMovePrefersUnplayed(t *testing.T) {
	a := NewAgent(2, 2)
	a.MarkSafe(Cell{0, 0})
	a.MarkSafe(Cell{0, 1})
	a.moves[Cell{0, 0}] = true

	move, ok := a.SafeMove()
	if !ok {
		t.Fatal("expected a safe move")
	}
	if move != (Cell{0, 1}) {
		t.Errorf("SafeMove = %v, want {0 1}", move)
	}

	a.moves[Cell{0, 1}] = true
	if _, ok := a.SafeMove(); ok {
		t.Error("no unplayed safe cell remains, SafeMove should report false")
	}
}

func TestRandomMoveAvoidsMinesAndMoves(t *testing.T) {
	a := NewAgent(2, 2)
	a.MarkMine(Cell{0, 0})
	a.moves[Cell{0, 1}] = true

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		move, ok := a.RandomMove(rng)
		if !ok {
			t.Fatal("expected a random move")
		}
		if move == (Cell{0, 0}) || move == (Cell{0, 1}) {
			t.Fatalf("RandomMove picked an excluded cell: %v", move)
		}
	}
}

func TestRandomMoveExhausted(t *testing.T) {
	a := NewAgent(1, 1)
	a.moves[Cell{0, 0}] = true
	if _, ok := a.RandomMove(rand.New(rand.NewSource(1))); ok {
		t.Error("RandomMove should report false with no cells left")
	}
}

// Plays a full seeded game with the agent choosing safe moves and the test
// supplying a non-mine cell whenever the agent has none. The agent must
// never call a safe cell a mine or a mine safe.
func TestAgentClearsSeededBoard(t *testing.T) {
	g, err := NewGame(4, 4, 3, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	a := NewAgent(4, 4)

	total := 4*4 - g.MineCount()
	for revealed := 0; revealed < total; revealed++ {
		move, ok := a.SafeMove()
		if !ok {
			move, ok = pickNonMine(g)
			if !ok {
				break
			}
		}
		if g.IsMine(move) {
			t.Fatalf("agent offered the mine %v as safe", move)
		}

		count, mine := g.Reveal(move)
		if mine {
			t.Fatalf("revealed a mine at %v", move)
		}
		a.AddKnowledge(move, count)

		for _, m := range a.KnownMines() {
			if !g.IsMine(m) {
				t.Fatalf("agent wrongly convicted %v", m)
			}
		}
		for _, s := range a.KnownSafes() {
			if g.IsMine(s) {
				t.Fatalf("agent wrongly cleared %v", s)
			}
		}
	}

	if !g.Won() {
		t.Error("board not cleared")
	}
}

func pickNonMine(g *Game) (Cell, bool) {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := Cell{r, c}
			if !g.IsMine(cell) && !g.Revealed(cell) {
				return cell, true
			}
		}
	}
	return Cell{}, false
}
