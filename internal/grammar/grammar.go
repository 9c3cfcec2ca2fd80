// Package grammar parses sentences against a small context-free grammar and
// extracts noun phrase chunks from the resulting trees. The grammar format
// is a compact rule text: one nonterminal per line, alternatives separated
// by '|', quoted tokens standing for terminal words.
package grammar

import (
	"fmt"
	"strings"
)

// Symbol is one element of a rule's right-hand side: either a nonterminal
// name or a literal word.
type Symbol struct {
	Name     string
	Terminal bool
}

// Rule rewrites Lhs into the sequence Rhs.
type Rule struct {
	Lhs string
	Rhs []Symbol
}

// Grammar is a compiled rule set ready for parsing. Build one with
// NewGrammar; the zero value is unusable.
type Grammar struct {
	Start string

	rules   []Rule
	byLhs   map[string][]int
	lexicon map[string]bool
}

// NewGrammar compiles rule text into a grammar with the given start symbol.
// Lines look like
//
//	S -> NP VP | S Conj S
//	Det -> "a" | "the"
//
// Repeated left-hand sides accumulate alternatives. Every referenced
// nonterminal must have at least one rule, and no alternative may be empty.
func NewGrammar(start, text string) (*Grammar, error) {
	g := &Grammar{
		Start:   start,
		byLhs:   make(map[string][]int),
		lexicon: make(map[string]bool),
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lhs, rhs, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("rule %q missing ->", line)
		}
		lhs = strings.TrimSpace(lhs)
		if lhs == "" || strings.ContainsAny(lhs, "\" ") {
			return nil, fmt.Errorf("bad left-hand side in %q", line)
		}
		for _, alt := range strings.Split(rhs, "|") {
			fields := strings.Fields(alt)
			if len(fields) == 0 {
				return nil, fmt.Errorf("empty alternative in %q", line)
			}
			rule := Rule{Lhs: lhs, Rhs: make([]Symbol, 0, len(fields))}
			for _, f := range fields {
				if strings.HasPrefix(f, `"`) {
					word := strings.Trim(f, `"`)
					if word == "" || len(word)+2 != len(f) {
						return nil, fmt.Errorf("bad terminal %s in %q", f, line)
					}
					rule.Rhs = append(rule.Rhs, Symbol{Name: word, Terminal: true})
					g.lexicon[word] = true
					continue
				}
				rule.Rhs = append(rule.Rhs, Symbol{Name: f})
			}
			g.byLhs[lhs] = append(g.byLhs[lhs], len(g.rules))
			g.rules = append(g.rules, rule)
		}
	}

	if len(g.byLhs[start]) == 0 {
		return nil, fmt.Errorf("start symbol %q has no rules", start)
	}
	for _, rule := range g.rules {
		for _, sym := range rule.Rhs {
			if !sym.Terminal && len(g.byLhs[sym.Name]) == 0 {
				return nil, fmt.Errorf("nonterminal %q used in a rule for %q but never defined", sym.Name, rule.Lhs)
			}
		}
	}
	return g, nil
}

// MustGrammar is NewGrammar for fixed rule texts; it panics on error.
func MustGrammar(start, text string) *Grammar {
	g, err := NewGrammar(start, text)
	if err != nil {
		panic(err)
	}
	return g
}

// Known reports whether the word appears as a terminal anywhere in the
// grammar.
func (g *Grammar) Known(word string) bool {
	return g.lexicon[word]
}

// The toy grammar over a handful of Sherlock Holmes sentences. Deliberately
// ambiguous: VP -> VP VP and the recursive NP rules admit several trees for
// some sentences.
const holmesText = `
Adj -> "country" | "dreadful" | "enigmatical" | "little" | "moist" | "red"
Adv -> "down" | "here" | "never"
Conj -> "and" | "until"
Det -> "a" | "an" | "his" | "my" | "the"
N -> "armchair" | "companion" | "day" | "door" | "hand" | "he" | "himself"
N -> "holmes" | "home" | "i" | "mess" | "paint" | "palm" | "pipe" | "she"
N -> "smile" | "thursday" | "walk" | "we" | "word"
P -> "at" | "before" | "in" | "of" | "on" | "to"
V -> "arrived" | "came" | "chuckled" | "had" | "lit" | "said" | "sat"
V -> "smiled" | "tell" | "were"
S -> NP VP | NP VP NP | NP VP S | VP NP | VP NP S | S Conj S
NP -> N | N NP | Det NP | Adj NP | P NP
VP -> V | Adv | VP VP
`

var holmes = MustGrammar("S", holmesText)

// HolmesGrammar returns the built-in toy grammar. The returned grammar is
// shared and must not be modified.
func HolmesGrammar() *Grammar {
	return holmes
}
