package crossword

import (
	"errors"
	"sort"
)

// ErrNoSolution means the search space was exhausted without filling the
// grid.
var ErrNoSolution = errors.New("no crossword fits the grid with these words")

// Assignment maps each slot to the word filling it.
type Assignment map[Variable]string

// Arc is a directed constraint between two crossing slots.
type Arc struct {
	X, Y Variable
}

// Generator searches for a consistent assignment. Each slot starts with the
// full word list as its domain and the domains only ever shrink.
type Generator struct {
	puzzle  *Puzzle
	domains map[Variable]map[string]bool
}

// NewGenerator prepares a search over the puzzle's word list.
func NewGenerator(p *Puzzle) *Generator {
	g := &Generator{
		puzzle:  p,
		domains: make(map[Variable]map[string]bool, len(p.variables)),
	}
	for _, v := range p.variables {
		domain := make(map[string]bool, len(p.words))
		for _, w := range p.words {
			domain[w] = true
		}
		g.domains[v] = domain
	}
	return g
}

// EnforceNodeConsistency drops every word whose length does not match its
// slot.
func (g *Generator) EnforceNodeConsistency() {
	for v, domain := range g.domains {
		for word := range domain {
			if len(word) != v.Length {
				delete(domain, word)
			}
		}
	}
}

// Revise removes the words in x's domain that clash with every word left in
// y's domain at the crossing cell. It reports whether anything was removed.
func (g *Generator) Revise(x, y Variable) bool {
	overlap := g.puzzle.Overlap(x, y)
	if overlap == nil {
		return false
	}

	revised := false
	for wordX := range g.domains[x] {
		supported := false
		for wordY := range g.domains[y] {
			if wordX[overlap.I] == wordY[overlap.J] {
				supported = true
				break
			}
		}
		if !supported {
			delete(g.domains[x], wordX)
			revised = true
		}
	}
	return revised
}

// AC3 runs arc consistency over the given arcs, or over every arc in the
// puzzle when arcs is nil. It reports false when some domain empties, which
// means the puzzle cannot be solved.
func (g *Generator) AC3(arcs []Arc) bool {
	queue := arcs
	if queue == nil {
		for _, x := range g.puzzle.Variables() {
			for _, y := range g.puzzle.Neighbors(x) {
				queue = append(queue, Arc{X: x, Y: y})
			}
		}
	}

	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		if !g.Revise(arc.X, arc.Y) {
			continue
		}
		if len(g.domains[arc.X]) == 0 {
			return false
		}
		for _, z := range g.puzzle.Neighbors(arc.X) {
			if z != arc.Y {
				queue = append(queue, Arc{X: z, Y: arc.X})
			}
		}
	}
	return true
}

// Solve returns a complete consistent assignment: every slot filled, all
// words distinct, correct lengths, matching letters at every crossing.
func (g *Generator) Solve() (Assignment, error) {
	g.EnforceNodeConsistency()
	if !g.AC3(nil) {
		return nil, ErrNoSolution
	}
	assignment := g.backtrack(make(Assignment, len(g.domains)))
	if assignment == nil {
		return nil, ErrNoSolution
	}
	return assignment, nil
}

func (g *Generator) backtrack(a Assignment) Assignment {
	if len(a) == len(g.domains) {
		return a
	}

	v := g.selectUnassigned(a)
	for _, word := range g.orderDomainValues(v, a) {
		a[v] = word
		if g.consistent(a) {
			if result := g.backtrack(a); result != nil {
				return result
			}
		}
		delete(a, v)
	}
	return nil
}

// consistent checks the partial assignment: distinct words, right lengths,
// agreement at crossings.
func (g *Generator) consistent(a Assignment) bool {
	seen := make(map[string]bool, len(a))
	for v, word := range a {
		if len(word) != v.Length || seen[word] {
			return false
		}
		seen[word] = true
		for _, n := range g.puzzle.Neighbors(v) {
			other, assigned := a[n]
			if !assigned {
				continue
			}
			if overlap := g.puzzle.Overlap(v, n); overlap != nil && word[overlap.I] != other[overlap.J] {
				return false
			}
		}
	}
	return true
}

// selectUnassigned picks the slot with the fewest words left, breaking ties
// by the most crossings. Iteration is over the sorted variable list, so the
// search is deterministic.
func (g *Generator) selectUnassigned(a Assignment) Variable {
	var best Variable
	found := false
	for _, v := range g.puzzle.Variables() {
		if _, assigned := a[v]; assigned {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		dv, db := len(g.domains[v]), len(g.domains[best])
		if dv < db || (dv == db && len(g.puzzle.Neighbors(v)) > len(g.puzzle.Neighbors(best))) {
			best = v
		}
	}
	return best
}

// orderDomainValues sorts v's candidates by how many options they eliminate
// from unassigned neighboring slots, least constraining first. Ties break
// alphabetically to keep runs reproducible.
func (g *Generator) orderDomainValues(v Variable, a Assignment) []string {
	type scored struct {
		word     string
		rulesOut int
	}
	candidates := make([]scored, 0, len(g.domains[v]))
	for word := range g.domains[v] {
		rulesOut := 0
		for _, n := range g.puzzle.Neighbors(v) {
			if _, assigned := a[n]; assigned {
				continue
			}
			overlap := g.puzzle.Overlap(v, n)
			if overlap == nil {
				continue
			}
			for other := range g.domains[n] {
				if word[overlap.I] != other[overlap.J] {
					rulesOut++
				}
			}
		}
		candidates = append(candidates, scored{word: word, rulesOut: rulesOut})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].rulesOut != candidates[j].rulesOut {
			return candidates[i].rulesOut < candidates[j].rulesOut
		}
		return candidates[i].word < candidates[j].word
	})

	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.word
	}
	return words
}
