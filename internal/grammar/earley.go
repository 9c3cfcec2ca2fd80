package grammar

import (
	"errors"
	"fmt"
)

// Parse failure modes, distinguishable with errors.Is.
var (
	ErrNoParse     = errors.New("sentence does not parse")
	ErrUnknownWord = errors.New("word not in lexicon")
)

// Parse returns every distinct parse tree for the word sequence, leftmost
// derivations first. It runs an Earley recognizer over the chart and then
// enumerates derivations from the completed spans, so left-recursive rules
// such as S -> S Conj S are fine. Returned trees share subtree structure and
// must be treated as read-only.
func (g *Grammar) Parse(words []string) ([]*Tree, error) {
	if len(words) == 0 {
		return nil, ErrNoParse
	}
	for _, w := range words {
		if !g.lexicon[w] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
	}

	run := newParseRun(g, words)
	run.recognize()
	if !run.completed[0][len(words)][g.Start] {
		return nil, ErrNoParse
	}
	trees := run.derive(g.Start, 0, len(words))
	if len(trees) == 0 {
		return nil, ErrNoParse
	}
	return trees, nil
}

// chartItem is one Earley state: rule r with the dot before Rhs[dot],
// started at word index origin.
type chartItem struct {
	rule, dot, origin int
}

type spanKey struct {
	lhs  string
	i, j int
}

type parseRun struct {
	g     *Grammar
	words []string

	chart [][]chartItem
	seen  []map[chartItem]bool

	// completed[i][j] holds the nonterminals recognized over words[i:j].
	completed [][]map[string]bool

	memo       map[spanKey][]*Tree
	inProgress map[spanKey]bool
}

func newParseRun(g *Grammar, words []string) *parseRun {
	n := len(words)
	p := &parseRun{
		g:          g,
		words:      words,
		chart:      make([][]chartItem, n+1),
		seen:       make([]map[chartItem]bool, n+1),
		completed:  make([][]map[string]bool, n+1),
		memo:       make(map[spanKey][]*Tree),
		inProgress: make(map[spanKey]bool),
	}
	for k := 0; k <= n; k++ {
		p.seen[k] = make(map[chartItem]bool)
		p.completed[k] = make([]map[string]bool, n+1)
		for j := 0; j <= n; j++ {
			p.completed[k][j] = make(map[string]bool)
		}
	}
	return p
}

func (p *parseRun) add(k int, it chartItem) {
	if p.seen[k][it] {
		return
	}
	p.seen[k][it] = true
	p.chart[k] = append(p.chart[k], it)
}

// recognize fills the chart with the classic predict/scan/complete loop.
// Charts grow while being scanned, so iteration is by index.
func (p *parseRun) recognize() {
	n := len(p.words)
	for _, ri := range p.g.byLhs[p.g.Start] {
		p.add(0, chartItem{rule: ri})
	}
	for k := 0; k <= n; k++ {
		for idx := 0; idx < len(p.chart[k]); idx++ {
			it := p.chart[k][idx]
			rhs := p.g.rules[it.rule].Rhs
			if it.dot == len(rhs) {
				p.complete(k, it)
				continue
			}
			next := rhs[it.dot]
			if next.Terminal {
				if k < n && p.words[k] == next.Name {
					p.add(k+1, chartItem{rule: it.rule, dot: it.dot + 1, origin: it.origin})
				}
				continue
			}
			for _, ri := range p.g.byLhs[next.Name] {
				p.add(k, chartItem{rule: ri, dot: 0, origin: k})
			}
		}
	}
}

// complete records the finished constituent and advances every state that
// was waiting on it. Rules have no empty alternatives, so origin < k and
// chart[origin] is already final.
func (p *parseRun) complete(k int, it chartItem) {
	lhs := p.g.rules[it.rule].Lhs
	p.completed[it.origin][k][lhs] = true
	for _, cand := range p.chart[it.origin] {
		rhs := p.g.rules[cand.rule].Rhs
		if cand.dot < len(rhs) && !rhs[cand.dot].Terminal && rhs[cand.dot].Name == lhs {
			p.add(k, chartItem{rule: cand.rule, dot: cand.dot + 1, origin: cand.origin})
		}
	}
}

// derive enumerates every tree for lhs over words[i:j], memoized per span.
// Only spans the recognizer completed are explored, which keeps the
// enumeration linear in the number of real derivations.
func (p *parseRun) derive(lhs string, i, j int) []*Tree {
	key := spanKey{lhs, i, j}
	if trees, ok := p.memo[key]; ok {
		return trees
	}
	if p.inProgress[key] || !p.completed[i][j][lhs] {
		return nil
	}
	p.inProgress[key] = true

	var trees []*Tree
	for _, ri := range p.g.byLhs[lhs] {
		for _, children := range p.assign(p.g.rules[ri].Rhs, 0, i, j) {
			if len(children) == 1 && children[0].Label == "" && children[0].Leaf != "" {
				// Preterminal rule like N -> "holmes" flattens to a leaf.
				trees = append(trees, &Tree{Label: lhs, Leaf: children[0].Leaf})
				continue
			}
			trees = append(trees, &Tree{Label: lhs, Children: children})
		}
	}

	delete(p.inProgress, key)
	p.memo[key] = trees
	return trees
}

// assign enumerates the ways rhs[idx:] can span words[i:j], returning one
// child slice per way.
func (p *parseRun) assign(rhs []Symbol, idx, i, j int) [][]*Tree {
	if idx == len(rhs) {
		if i == j {
			return [][]*Tree{nil}
		}
		return nil
	}

	sym := rhs[idx]
	remaining := len(rhs) - idx - 1
	var out [][]*Tree

	if sym.Terminal {
		if i < j && p.words[i] == sym.Name {
			for _, rest := range p.assign(rhs, idx+1, i+1, j) {
				out = append(out, append([]*Tree{{Leaf: p.words[i]}}, rest...))
			}
		}
		return out
	}

	for k := i + 1; k <= j-remaining; k++ {
		subs := p.derive(sym.Name, i, k)
		if len(subs) == 0 {
			continue
		}
		for _, rest := range p.assign(rhs, idx+1, k, j) {
			for _, sub := range subs {
				children := make([]*Tree, 0, len(rest)+1)
				children = append(children, sub)
				children = append(children, rest...)
				out = append(out, children)
			}
		}
	}
	return out
}
