package minesweeper

import (
	"math/rand"
	"time"
)

// Agent accumulates knowledge about a board and derives cells that must be
// safe or must be mines. It never looks at the board itself; everything it
// knows arrives through AddKnowledge.
type Agent struct {
	Height, Width int

	moves     map[Cell]bool
	mines     map[Cell]bool
	safes     map[Cell]bool
	knowledge []*Sentence
}

// NewAgent returns an agent for a height x width board with no knowledge.
func NewAgent(height, width int) *Agent {
	return &Agent{
		Height: height,
		Width:  width,
		moves:  make(map[Cell]bool),
		mines:  make(map[Cell]bool),
		safes:  make(map[Cell]bool),
	}
}

// MarkMine records a cell as a mine and propagates the fact into every
// sentence.
func (a *Agent) MarkMine(c Cell) {
	a.mines[c] = true
	for _, s := range a.knowledge {
		s.MarkMine(c)
	}
}

// MarkSafe records a cell as safe and propagates the fact into every
// sentence.
func (a *Agent) MarkSafe(c Cell) {
	a.safes[c] = true
	for _, s := range a.knowledge {
		s.MarkSafe(c)
	}
}

// KnownMines returns every cell proven to be a mine, in row-major order.
func (a *Agent) KnownMines() []Cell { return sortCells(a.mines) }

// KnownSafes returns every cell proven safe, in row-major order.
func (a *Agent) KnownSafes() []Cell { return sortCells(a.safes) }

// Knowledge returns the live sentences. Useful for inspecting what the agent
// still considers unresolved.
func (a *Agent) Knowledge() []*Sentence { return a.knowledge }

// AddKnowledge tells the agent that a revealed safe cell touches count
// mines. It records the move, builds a sentence over the still-unknown
// neighbors, and then runs inference to a fixed point: forced conclusions
// are marked, empty sentences dropped, and subset differences derived until
// nothing changes.
func (a *Agent) AddKnowledge(cell Cell, count int) {
	a.moves[cell] = true
	a.MarkSafe(cell)

	cells := make(map[Cell]bool)
	for _, n := range a.neighbors(cell) {
		if a.safes[n] {
			continue
		}
		if a.mines[n] {
			count--
			continue
		}
		cells[n] = true
	}
	a.knowledge = append(a.knowledge, &Sentence{Cells: cells, Count: count})

	a.infer()
}

// SafeMove returns a cell known to be safe that has not been played yet,
// smallest in row-major order so play is reproducible.
func (a *Agent) SafeMove() (Cell, bool) {
	for _, c := range sortCells(a.safes) {
		if !a.moves[c] {
			return c, true
		}
	}
	return Cell{}, false
}

// RandomMove returns a uniformly random cell that has not been played and is
// not a known mine. A nil rng is seeded from the clock. The second result is
// false when no such cell remains.
func (a *Agent) RandomMove(rng *rand.Rand) (Cell, bool) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var candidates []Cell
	for r := 0; r < a.Height; r++ {
		for c := 0; c < a.Width; c++ {
			cell := Cell{Row: r, Col: c}
			if !a.moves[cell] && !a.mines[cell] {
				candidates = append(candidates, cell)
			}
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// infer runs the knowledge base to a fixed point.
func (a *Agent) infer() {
	for changed := true; changed; {
		changed = false

		// Harvest forced conclusions. KnownMines/KnownSafes snapshot their
		// cells, so marking while iterating is fine.
		for _, s := range a.knowledge {
			for _, c := range s.KnownMines() {
				if !a.mines[c] {
					a.MarkMine(c)
					changed = true
				}
			}
			for _, c := range s.KnownSafes() {
				if !a.safes[c] {
					a.MarkSafe(c)
					changed = true
				}
			}
		}

		// Spent sentences carry no information.
		kept := a.knowledge[:0]
		for _, s := range a.knowledge {
			if len(s.Cells) > 0 {
				kept = append(kept, s)
			}
		}
		a.knowledge = kept

		// Subset rule: when s1's cells all lie inside s2, the cells unique
		// to s2 hold exactly Count2 - Count1 mines.
		var derived []*Sentence
		for _, s1 := range a.knowledge {
			for _, s2 := range a.knowledge {
				if s1 == s2 || !s1.SubsetOf(s2) {
					continue
				}
				diff := &Sentence{Cells: make(map[Cell]bool, len(s2.Cells)-len(s1.Cells)), Count: s2.Count - s1.Count}
				for c := range s2.Cells {
					if !s1.Cells[c] {
						diff.Cells[c] = true
					}
				}
				if !a.hasSentence(diff) && !contains(derived, diff) {
					derived = append(derived, diff)
				}
			}
		}
		if len(derived) > 0 {
			a.knowledge = append(a.knowledge, derived...)
			changed = true
		}
	}
}

func (a *Agent) hasSentence(s *Sentence) bool {
	return contains(a.knowledge, s)
}

func contains(sentences []*Sentence, s *Sentence) bool {
	for _, existing := range sentences {
		if existing.Equal(s) {
			return true
		}
	}
	return false
}

func (a *Agent) neighbors(c Cell) []Cell {
	var cells []Cell
	for r := c.Row - 1; r <= c.Row+1; r++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := Cell{Row: r, Col: col}
			if n == c || n.Row < 0 || n.Row >= a.Height || n.Col < 0 || n.Col >= a.Width {
				continue
			}
			cells = append(cells, n)
		}
	}
	return cells
}
