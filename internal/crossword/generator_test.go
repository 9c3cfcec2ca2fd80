package crossword

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// A plus-shaped grid: one across slot crossing one down slot at (0, 1).
const crossStructure = "___\n#_#\n#_#\n"

func crossVariables() (across, down Variable) {
	across = Variable{Row: 0, Col: 0, Direction: Across, Length: 3}
	down = Variable{Row: 0, Col: 1, Direction: Down, Length: 3}
	return
}

func domainWords(g *Generator, v Variable) []string {
	var words []string
	for w := range g.domains[v] {
		words = append(words, w)
	}
	return words
}

func TestEnforceNodeConsistency(t *testing.T) {
	p := loadTestPuzzle(t, crossStructure, "CAT\nATE\nAB\n")
	g := NewGenerator(p)
	g.EnforceNodeConsistency()

	across, _ := crossVariables()
	if got := len(g.domains[across]); got != 2 {
		t.Errorf("across domain has %d words, want 2 (AB dropped)", got)
	}
	if g.domains[across]["AB"] {
		t.Error("AB survived node consistency in a length-3 slot")
	}
}

func TestRevise(t *testing.T) {
	p := loadTestPuzzle(t, crossStructure, "CAT\nATE\n")
	g := NewGenerator(p)
	g.EnforceNodeConsistency()
	across, down := crossVariables()

	// ATE has no down word starting with T, so it falls out of the across
	// domain. CAT keeps ATE as support.
	if !g.Revise(across, down) {
		t.Fatal("Revise should report a change")
	}
	if diff := cmp.Diff([]string{"CAT"}, domainWords(g, across)); diff != "" {
		t.Errorf("across domain mismatch (-want +got):\n%s", diff)
	}
	if g.Revise(across, down) {
		t.Error("second Revise should be a no-op")
	}
}

func TestReviseWithoutOverlap(t *testing.T) {
	p := loadTestPuzzle(t, "___\n###\n___\n", "CAT\nDOG\n")
	g := NewGenerator(p)
	g.EnforceNodeConsistency()
	vars := p.Variables()
	if g.Revise(vars[0], vars[1]) {
		t.Error("Revise on non-crossing slots should change nothing")
	}
}

func TestAC3(t *testing.T) {
	p := loadTestPuzzle(t, crossStructure, "CAT\nATE\nDOG\n")
	g := NewGenerator(p)
	g.EnforceNodeConsistency()

	if !g.AC3(nil) {
		t.Fatal("AC3 emptied a domain on a solvable puzzle")
	}
	across, down := crossVariables()
	if diff := cmp.Diff([]string{"CAT"}, domainWords(g, across)); diff != "" {
		t.Errorf("across domain mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ATE"}, domainWords(g, down)); diff != "" {
		t.Errorf("down domain mismatch (-want +got):\n%s", diff)
	}
}

func TestAC3DetectsDeadEnd(t *testing.T) {
	// Both words start with C, but the crossing needs the across word's
	// second letter to start the down word.
	p := loadTestPuzzle(t, crossStructure, "CAT\nCOT\n")
	g := NewGenerator(p)
	g.EnforceNodeConsistency()
	if g.AC3(nil) {
		t.Error("AC3 should report failure when a domain empties")
	}
}

func TestSolve(t *testing.T) {
	p := loadTestPuzzle(t, crossStructure, "CAT\nATE\n")
	g := NewGenerator(p)
	assignment, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	across, down := crossVariables()
	want := Assignment{across: "CAT", down: "ATE"}
	if diff := cmp.Diff(want, assignment); diff != "" {
		t.Errorf("assignment mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveRequiresDistinctWords(t *testing.T) {
	// Two disconnected slots, one candidate word: distinctness makes it
	// unsolvable.
	p := loadTestPuzzle(t, "___\n###\n___\n", "CAT\n")
	g := NewGenerator(p)
	if _, err := g.Solve(); !errors.Is(err, ErrNoSolution) {
		t.Errorf("err = %v, want ErrNoSolution", err)
	}

	p = loadTestPuzzle(t, "___\n###\n___\n", "CAT\nDOG\n")
	g = NewGenerator(p)
	assignment, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if assignment[Variable{Row: 0, Col: 0, Direction: Across, Length: 3}] == assignment[Variable{Row: 2, Col: 0, Direction: Across, Length: 3}] {
		t.Error("the two slots must hold different words")
	}
}

func TestSolveNoVariables(t *testing.T) {
	p := loadTestPuzzle(t, "###\n", "CAT\n")
	g := NewGenerator(p)
	assignment, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(assignment) != 0 {
		t.Errorf("assignment = %v, want empty", assignment)
	}
}

func TestSolveBacktracks(t *testing.T) {
	// AC3 alone leaves several candidates per slot; backtracking with the
	// distinctness check has to finish the job.
	p := loadTestPuzzle(t, "__\n__\n", "AB\nCD\nAC\nBD\n")
	g := NewGenerator(p)
	assignment, err := g.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(assignment) != 4 {
		t.Fatalf("got %d assignments, want 4", len(assignment))
	}
	if !g.consistent(assignment) {
		t.Errorf("assignment inconsistent: %v", assignment)
	}
}
