package tictactoe

import "testing"

func TestPlayerAlternates(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Mark
	}{
		{"empty board", Board{}, X},
		{"after one move", Board{{X, Empty, Empty}}, O},
		{"after two moves", Board{{X, O, Empty}}, X},
		{"mid game", Board{{X, O, X}, {O, Empty, Empty}}, X},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Player(tt.board); got != tt.want {
				t.Errorf("Player = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMovesRowMajor(t *testing.T) {
	b := Board{{X, Empty, O}}
	moves := Moves(b)
	if len(moves) != 7 {
		t.Fatalf("got %d moves, want 7", len(moves))
	}
	if moves[0] != (Move{0, 1}) || moves[1] != (Move{1, 0}) {
		t.Errorf("moves not in row-major order: %v", moves[:2])
	}
}

func TestApply(t *testing.T) {
	b := Board{}
	next, err := Apply(b, Move{1, 1})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next[1][1] != X {
		t.Errorf("applied mark = %v, want X", next[1][1])
	}
	if b[1][1] != Empty {
		t.Error("Apply mutated its input board")
	}

	second, err := Apply(next, Move{0, 0})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if second[0][0] != O {
		t.Errorf("second mark = %v, want O", second[0][0])
	}
}

func TestApplyErrors(t *testing.T) {
	occupied := Board{{X, Empty, Empty}}
	if _, err := Apply(occupied, Move{0, 0}); err == nil {
		t.Error("expected error for occupied square")
	}
	if _, err := Apply(Board{}, Move{3, 0}); err == nil {
		t.Error("expected error for out-of-range move")
	}

	won := Board{
		{X, X, X},
		{O, O, Empty},
	}
	if _, err := Apply(won, Move{2, 2}); err == nil {
		t.Error("expected error for finished game")
	}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Mark
	}{
		{"no winner", Board{}, Empty},
		{"top row", Board{{X, X, X}, {O, O, Empty}}, X},
		{"middle row", Board{{X, Empty, X}, {O, O, O}}, O},
		{"bottom row", Board{{O, Empty, Empty}, {O, Empty, Empty}, {X, X, X}}, X},
		{"left column", Board{{O, X, Empty}, {O, X, Empty}, {O, Empty, X}}, O},
		{"middle column", Board{{O, X, Empty}, {Empty, X, O}, {Empty, X, Empty}}, X},
		{"right column", Board{{X, Empty, O}, {Empty, X, O}, {Empty, Empty, O}}, O},
		{"main diagonal", Board{{X, O, Empty}, {O, X, Empty}, {Empty, Empty, X}}, X},
		{"anti diagonal", Board{{X, X, O}, {Empty, O, Empty}, {O, Empty, X}}, O},
		{"full draw", Board{{X, O, X}, {X, O, O}, {O, X, X}}, Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Winner(tt.board); got != tt.want {
				t.Errorf("Winner = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalAndUtility(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		terminal bool
		utility  int
	}{
		{"in progress", Board{{X, Empty, Empty}}, false, 0},
		{"x won", Board{{X, X, X}, {O, O, Empty}}, true, 1},
		{"o won", Board{{X, Empty, X}, {O, O, O}}, true, -1},
		{"full draw", Board{{X, O, X}, {X, O, O}, {O, X, X}}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Terminal(tt.board); got != tt.terminal {
				t.Errorf("Terminal = %v, want %v", got, tt.terminal)
			}
			if got := Utility(tt.board); got != tt.utility {
				t.Errorf("Utility = %d, want %d", got, tt.utility)
			}
		})
	}
}

func TestBoardString(t *testing.T) {
	b := Board{{X, Empty, O}}
	want := "X . O\n. . .\n. . ."
	if got := b.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
