// Package tictactoe implements the rules of tic-tac-toe and an optimal
// player built on plain recursive minimax. Boards are value types; every
// operation returns a new board and leaves its input untouched.
package tictactoe

import (
	"fmt"
	"strings"
)

// Mark is the content of one square.
type Mark byte

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Board is a 3x3 grid. The zero value is the empty starting board.
type Board [3][3]Mark

// Move addresses one square by row and column, both 0-2.
type Move struct {
	Row, Col int
}

// Player returns whose turn it is. X always moves first, so X is to move
// whenever both sides have played the same number of marks.
func Player(b Board) Mark {
	var xs, os int
	for _, row := range b {
		for _, m := range row {
			switch m {
			case X:
				xs++
			case O:
				os++
			}
		}
	}
	if xs <= os {
		return X
	}
	return O
}

// Moves returns every empty square in row-major order.
func Moves(b Board) []Move {
	var moves []Move
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Apply returns the board that results from the current player marking m.
// The input board is never modified.
func Apply(b Board, m Move) (Board, error) {
	if m.Row < 0 || m.Row > 2 || m.Col < 0 || m.Col > 2 {
		return b, fmt.Errorf("move (%d, %d) out of range", m.Row, m.Col)
	}
	if b[m.Row][m.Col] != Empty {
		return b, fmt.Errorf("square (%d, %d) already taken", m.Row, m.Col)
	}
	if Terminal(b) {
		return b, fmt.Errorf("game already over")
	}
	b[m.Row][m.Col] = Player(b)
	return b, nil
}

// Winner returns the mark holding a full row, column, or diagonal, or Empty
// when nobody has won.
func Winner(b Board) Mark {
	for i := 0; i < 3; i++ {
		if b[i][0] != Empty && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
		if b[0][i] != Empty && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i]
		}
	}
	if b[1][1] != Empty {
		if b[0][0] == b[1][1] && b[1][1] == b[2][2] {
			return b[1][1]
		}
		if b[0][2] == b[1][1] && b[1][1] == b[2][0] {
			return b[1][1]
		}
	}
	return Empty
}

// Terminal reports whether the game is over, by win or by full board.
func Terminal(b Board) bool {
	if Winner(b) != Empty {
		return true
	}
	return len(Moves(b)) == 0
}

// Utility scores a terminal board: +1 when X has won, -1 when O has won,
// 0 for a draw. Only meaningful on terminal boards.
func Utility(b Board) int {
	switch Winner(b) {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b[r][c] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(b[r][c].String())
			}
		}
		if r < 2 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
