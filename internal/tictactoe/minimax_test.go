package tictactoe

import "testing"

func TestMinimaxTakesImmediateWin(t *testing.T) {
	b := Board{
		{X, X, Empty},
		{O, O, Empty},
	}
	// X to move and (0, 2) wins on the spot.
	move, ok := Minimax(b)
	if !ok {
		t.Fatal("Minimax returned no move")
	}
	if move != (Move{0, 2}) {
		t.Errorf("Minimax = %v, want {0 2}", move)
	}
}

func TestMinimaxBlocksImmediateLoss(t *testing.T) {
	b := Board{
		{X, X, Empty},
		{O, Empty, Empty},
		{X, O, Empty},
	}
	// O to move; anything but (0, 2) loses to X next turn.
	move, ok := Minimax(b)
	if !ok {
		t.Fatal("Minimax returned no move")
	}
	if move != (Move{0, 2}) {
		t.Errorf("Minimax = %v, want the block at {0 2}", move)
	}
}

func TestMinimaxTerminalBoard(t *testing.T) {
	b := Board{{X, X, X}, {O, O, Empty}}
	if _, ok := Minimax(b); ok {
		t.Error("Minimax returned a move on a terminal board")
	}
}

func TestOpeningValueIsDraw(t *testing.T) {
	if v := maxValue(Board{}); v != 0 {
		t.Errorf("game value of the empty board = %d, want 0", v)
	}
}

func TestMinimaxSelfPlayDraws(t *testing.T) {
	b := Board{}
	for {
		move, ok := Minimax(b)
		if !ok {
			break
		}
		next, err := Apply(b, move)
		if err != nil {
			t.Fatalf("Apply(%v): %v", move, err)
		}
		b = next
	}
	if w := Winner(b); w != Empty {
		t.Errorf("optimal self-play produced a winner: %v\n%v", w, b)
	}
	if len(Moves(b)) != 0 {
		t.Errorf("self-play stopped before the board filled:\n%v", b)
	}
}

// Every X strategy against an optimal O ends in a draw or an O win. This
// walks the full tree of X choices with O replying via Minimax.
func TestMinimaxNeverLosesAsO(t *testing.T) {
	var walk func(b Board)
	walk = func(b Board) {
		if Terminal(b) {
			if Winner(b) == X {
				t.Fatalf("X beat the optimal O:\n%v", b)
			}
			return
		}
		for _, m := range Moves(b) {
			afterX, _ := Apply(b, m)
			if Terminal(afterX) {
				if Winner(afterX) == X {
					t.Fatalf("X beat the optimal O:\n%v", afterX)
				}
				continue
			}
			reply, _ := Minimax(afterX)
			afterO, _ := Apply(afterX, reply)
			walk(afterO)
		}
	}
	walk(Board{})
}
