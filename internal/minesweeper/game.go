// Package minesweeper holds a minesweeper board plus a knowledge-based agent
// that infers safe moves from the numbers it has seen.
package minesweeper

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Cell addresses one square by row and column.
type Cell struct {
	Row, Col int
}

// Game is one minesweeper board: hidden mines plus the player's flag and
// reveal state.
type Game struct {
	Height, Width int

	mines    map[Cell]bool
	flagged  map[Cell]bool
	revealed map[Cell]bool
}

// NewGame places mineCount mines uniformly at random on a height x width
// board. A nil rng is seeded from the clock.
func NewGame(height, width, mineCount int, rng *rand.Rand) (*Game, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("board must be at least 1x1, got %dx%d", height, width)
	}
	if mineCount < 1 || mineCount >= height*width {
		return nil, fmt.Errorf("mine count must be in [1, %d), got %d", height*width, mineCount)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		Height:   height,
		Width:    width,
		mines:    make(map[Cell]bool, mineCount),
		flagged:  make(map[Cell]bool),
		revealed: make(map[Cell]bool),
	}
	for len(g.mines) < mineCount {
		c := Cell{Row: rng.Intn(height), Col: rng.Intn(width)}
		g.mines[c] = true
	}
	return g, nil
}

// IsMine reports whether the cell hides a mine.
func (g *Game) IsMine(c Cell) bool {
	return g.mines[c]
}

// NearbyMines counts the mines in the 8-neighborhood of c, not counting c
// itself.
func (g *Game) NearbyMines(c Cell) int {
	count := 0
	for r := c.Row - 1; r <= c.Row+1; r++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := Cell{Row: r, Col: col}
			if n == c || !g.inBounds(n) {
				continue
			}
			if g.mines[n] {
				count++
			}
		}
	}
	return count
}

// Reveal uncovers a cell. It reports whether the cell was a mine; when it is
// not, count holds the number of neighboring mines and the cell is recorded
// as revealed.
func (g *Game) Reveal(c Cell) (count int, mine bool) {
	if !g.inBounds(c) || g.revealed[c] {
		return 0, false
	}
	if g.mines[c] {
		return 0, true
	}
	g.revealed[c] = true
	delete(g.flagged, c)
	return g.NearbyMines(c), false
}

// ToggleFlag flags or unflags an unrevealed cell.
func (g *Game) ToggleFlag(c Cell) {
	if !g.inBounds(c) || g.revealed[c] {
		return
	}
	if g.flagged[c] {
		delete(g.flagged, c)
	} else {
		g.flagged[c] = true
	}
}

// Revealed reports whether the cell has been uncovered.
func (g *Game) Revealed(c Cell) bool { return g.revealed[c] }

// Flagged reports whether the cell carries a flag.
func (g *Game) Flagged(c Cell) bool { return g.flagged[c] }

// MineCount returns the number of mines on the board.
func (g *Game) MineCount() int { return len(g.mines) }

// FlagCount returns the number of flags currently placed.
func (g *Game) FlagCount() int { return len(g.flagged) }

// Won reports whether the game is won: every safe cell revealed, or every
// mine flagged with no spare flags.
func (g *Game) Won() bool {
	if len(g.revealed) == g.Height*g.Width-len(g.mines) {
		return true
	}
	if len(g.flagged) != len(g.mines) {
		return false
	}
	for c := range g.mines {
		if !g.flagged[c] {
			return false
		}
	}
	return true
}

// Mines returns every mine cell in row-major order. Used when a lost game
// reveals the board.
func (g *Game) Mines() []Cell {
	return sortCells(g.mines)
}

func (g *Game) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

func sortCells(set map[Cell]bool) []Cell {
	cells := make([]Cell, 0, len(set))
	for c := range set {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}
