// Package crossword fills crossword grids by treating each word slot as a
// constraint-satisfaction variable: node consistency, AC-3 arc consistency,
// then backtracking search over the surviving domains.
package crossword

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Direction of a word slot.
type Direction byte

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Cell addresses one grid square.
type Cell struct {
	Row, Col int
}

// Variable is one word slot: a maximal run of open cells, at least two long.
type Variable struct {
	Row, Col  int
	Direction Direction
	Length    int
}

// Cells returns the grid cells the slot covers, in word order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := 0; k < v.Length; k++ {
		if v.Direction == Across {
			cells[k] = Cell{Row: v.Row, Col: v.Col + k}
		} else {
			cells[k] = Cell{Row: v.Row + k, Col: v.Col}
		}
	}
	return cells
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.Row, v.Col, v.Direction, v.Length)
}

// Overlap records where two slots cross: cell I of the first is cell J of
// the second.
type Overlap struct {
	I, J int
}

// Puzzle is a parsed grid plus its candidate word list.
type Puzzle struct {
	Height, Width int

	open      [][]bool
	words     []string
	variables []Variable
	overlaps  map[[2]Variable]*Overlap
}

// LoadPuzzle reads a structure file ('_' marks an open cell, anything else
// blocked; short lines are padded with blocked cells) and a words file (one
// word per line, uppercased, deduplicated).
func LoadPuzzle(structurePath, wordsPath string) (*Puzzle, error) {
	structure, err := os.ReadFile(structurePath)
	if err != nil {
		return nil, fmt.Errorf("reading structure: %w", err)
	}
	wordData, err := os.ReadFile(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}

	p := parseStructure(string(structure))

	seen := make(map[string]bool)
	for _, line := range strings.Split(string(wordData), "\n") {
		word := strings.ToUpper(strings.TrimSpace(line))
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		p.words = append(p.words, word)
	}
	sort.Strings(p.words)

	p.findVariables()
	p.findOverlaps()
	return p, nil
}

func parseStructure(text string) *Puzzle {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	p := &Puzzle{Height: len(lines)}
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimRight(line, "\r"))
		if len(rows[i]) > p.Width {
			p.Width = len(rows[i])
		}
	}

	p.open = make([][]bool, p.Height)
	for r := range p.open {
		p.open[r] = make([]bool, p.Width)
		for c, ch := range rows[r] {
			p.open[r][c] = ch == '_'
		}
	}
	return p
}

// findVariables collects every maximal run of open cells with length >= 2,
// across then down.
func (p *Puzzle) findVariables() {
	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			if !p.open[r][c] {
				continue
			}
			if c == 0 || !p.open[r][c-1] {
				length := 0
				for k := c; k < p.Width && p.open[r][k]; k++ {
					length++
				}
				if length > 1 {
					p.variables = append(p.variables, Variable{Row: r, Col: c, Direction: Across, Length: length})
				}
			}
			if r == 0 || !p.open[r-1][c] {
				length := 0
				for k := r; k < p.Height && p.open[k][c]; k++ {
					length++
				}
				if length > 1 {
					p.variables = append(p.variables, Variable{Row: r, Col: c, Direction: Down, Length: length})
				}
			}
		}
	}
	sort.Slice(p.variables, func(i, j int) bool {
		return lessVariable(p.variables[i], p.variables[j])
	})
}

func lessVariable(a, b Variable) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	if a.Direction != b.Direction {
		return a.Direction < b.Direction
	}
	return a.Length < b.Length
}

// findOverlaps records the crossing cell of every intersecting slot pair.
// Distinct slots cross in at most one cell.
func (p *Puzzle) findOverlaps() {
	p.overlaps = make(map[[2]Variable]*Overlap)
	for _, v1 := range p.variables {
		cells1 := v1.Cells()
		for _, v2 := range p.variables {
			if v1 == v2 {
				continue
			}
			for i, c1 := range cells1 {
				for j, c2 := range v2.Cells() {
					if c1 == c2 {
						p.overlaps[[2]Variable{v1, v2}] = &Overlap{I: i, J: j}
					}
				}
			}
		}
	}
}

// Open reports whether the cell at (row, col) takes a letter.
func (p *Puzzle) Open(row, col int) bool {
	return row >= 0 && row < p.Height && col >= 0 && col < p.Width && p.open[row][col]
}

// Words returns the candidate words in sorted order.
func (p *Puzzle) Words() []string {
	return append([]string(nil), p.words...)
}

// Variables returns every word slot in row-major order.
func (p *Puzzle) Variables() []Variable {
	return append([]Variable(nil), p.variables...)
}

// Overlap returns where v1 and v2 cross, or nil when they do not.
func (p *Puzzle) Overlap(v1, v2 Variable) *Overlap {
	return p.overlaps[[2]Variable{v1, v2}]
}

// Neighbors returns every slot crossing v, in row-major order.
func (p *Puzzle) Neighbors(v Variable) []Variable {
	var neighbors []Variable
	for _, other := range p.variables {
		if other != v && p.Overlap(v, other) != nil {
			neighbors = append(neighbors, other)
		}
	}
	return neighbors
}
