package minesweeper

import (
	"fmt"
	"strings"
)

// Sentence is one logical statement about the board: exactly Count of the
// cells in Cells are mines.
type Sentence struct {
	Cells map[Cell]bool
	Count int
}

// NewSentence builds a sentence over the given cells.
func NewSentence(cells []Cell, count int) *Sentence {
	s := &Sentence{Cells: make(map[Cell]bool, len(cells)), Count: count}
	for _, c := range cells {
		s.Cells[c] = true
	}
	return s
}

// KnownMines returns every cell the sentence proves to be a mine, which
// happens exactly when all remaining cells must be mines. Nil otherwise.
func (s *Sentence) KnownMines() []Cell {
	if s.Count == 0 || len(s.Cells) != s.Count {
		return nil
	}
	return sortCells(s.Cells)
}

// KnownSafes returns every cell the sentence proves safe, which happens
// exactly when the sentence counts zero mines. Nil otherwise.
func (s *Sentence) KnownSafes() []Cell {
	if s.Count != 0 || len(s.Cells) == 0 {
		return nil
	}
	return sortCells(s.Cells)
}

// MarkMine removes a cell known to be a mine, keeping the sentence true by
// lowering its count.
func (s *Sentence) MarkMine(c Cell) {
	if s.Cells[c] {
		delete(s.Cells, c)
		s.Count--
	}
}

// MarkSafe removes a cell known to be safe. The count is untouched since the
// cell never contributed a mine.
func (s *Sentence) MarkSafe(c Cell) {
	delete(s.Cells, c)
}

// SubsetOf reports whether s covers strictly fewer cells than o and every
// one of them appears in o.
func (s *Sentence) SubsetOf(o *Sentence) bool {
	if len(s.Cells) == 0 || len(s.Cells) >= len(o.Cells) {
		return false
	}
	for c := range s.Cells {
		if !o.Cells[c] {
			return false
		}
	}
	return true
}

// Equal reports whether both sentences state the same fact.
func (s *Sentence) Equal(o *Sentence) bool {
	if s.Count != o.Count || len(s.Cells) != len(o.Cells) {
		return false
	}
	for c := range s.Cells {
		if !o.Cells[c] {
			return false
		}
	}
	return true
}

func (s *Sentence) String() string {
	parts := make([]string, 0, len(s.Cells))
	for _, c := range sortCells(s.Cells) {
		parts = append(parts, fmt.Sprintf("(%d %d)", c.Row, c.Col))
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, " "), s.Count)
}
