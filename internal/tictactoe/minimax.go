package tictactoe

import "math"

// Minimax returns the optimal move for the player whose turn it is, assuming
// the opponent also plays optimally. X maximizes utility and O minimizes it.
// The second result is false on terminal boards. Ties between equally good
// moves resolve to the first in row-major order, so play is deterministic.
func Minimax(b Board) (Move, bool) {
	if Terminal(b) {
		return Move{}, false
	}

	var best Move
	if Player(b) == X {
		bestVal := math.MinInt
		for _, m := range Moves(b) {
			next, _ := Apply(b, m)
			if v := minValue(next); v > bestVal {
				bestVal, best = v, m
			}
		}
	} else {
		bestVal := math.MaxInt
		for _, m := range Moves(b) {
			next, _ := Apply(b, m)
			if v := maxValue(next); v < bestVal {
				bestVal, best = v, m
			}
		}
	}
	return best, true
}

func maxValue(b Board) int {
	if Terminal(b) {
		return Utility(b)
	}
	v := math.MinInt
	for _, m := range Moves(b) {
		next, _ := Apply(b, m)
		if mv := minValue(next); mv > v {
			v = mv
		}
	}
	return v
}

func minValue(b Board) int {
	if Terminal(b) {
		return Utility(b)
	}
	v := math.MaxInt
	for _, m := range Moves(b) {
		next, _ := Apply(b, m)
		if mv := maxValue(next); mv < v {
			v = mv
		}
	}
	return v
}
