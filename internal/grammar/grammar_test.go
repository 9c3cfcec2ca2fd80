package grammar

import (
	"strings"
	"testing"
)

func TestNewGrammar(t *testing.T) {
	g, err := NewGrammar("S", `
		S -> NP V
		NP -> "the" N | N
		N -> "cat" | "dog"
		V -> "sat"
	`)
	if err != nil {
		t.Fatalf("NewGrammar: %v", err)
	}
	for _, word := range []string{"the", "cat", "dog", "sat"} {
		if !g.Known(word) {
			t.Errorf("Known(%q) = false, want true", word)
		}
	}
	if g.Known("mat") {
		t.Error("Known should reject words outside the grammar")
	}

	trees, err := g.Parse([]string{"the", "cat", "sat"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := "(S (NP the (N cat)) (V sat))"; trees[0].String() != want {
		t.Errorf("tree = %s, want %s", trees[0], want)
	}
}

func TestNewGrammarMergesRepeatedLhs(t *testing.T) {
	g, err := NewGrammar("S", `
		S -> N
		N -> "cat"
		N -> "dog"
	`)
	if err != nil {
		t.Fatalf("NewGrammar: %v", err)
	}
	for _, word := range []string{"cat", "dog"} {
		if _, err := g.Parse([]string{word}); err != nil {
			t.Errorf("Parse(%q): %v", word, err)
		}
	}
}

func TestNewGrammarErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing arrow", `S NP VP`},
		{"empty alternative", `S -> "a" |`},
		{"undefined nonterminal", `S -> NP`},
		{"empty terminal", `S -> ""`},
		{"unterminated quote", `S -> "a`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrammar("S", tt.text); err == nil {
				t.Errorf("NewGrammar(%q) succeeded, want error", tt.text)
			}
		})
	}

	if _, err := NewGrammar("X", `S -> "a"`); err == nil {
		t.Error("expected error for start symbol without rules")
	}
}

func TestMustGrammarPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGrammar did not panic on a bad grammar")
		}
	}()
	MustGrammar("S", "garbage")
}

func TestHolmesGrammarLexicon(t *testing.T) {
	g := HolmesGrammar()
	known := []string{"holmes", "armchair", "until", "enigmatical", "were"}
	for _, word := range known {
		if !g.Known(word) {
			t.Errorf("Known(%q) = false, want true", word)
		}
	}
	if g.Known("watson") {
		t.Error("watson is not in the toy lexicon")
	}
}

func TestGrammarRejectsSpacedLhs(t *testing.T) {
	_, err := NewGrammar("S", `S X -> "a"`)
	if err == nil || !strings.Contains(err.Error(), "left-hand side") {
		t.Errorf("err = %v, want a left-hand side complaint", err)
	}
}
