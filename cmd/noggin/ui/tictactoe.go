package ui

import (
	"fmt"
	"strings"

	"noggin/internal/ledger"
	"noggin/internal/tictactoe"

	tea "github.com/charmbracelet/bubbletea"
)

// tttPhase tracks where the tic-tac-toe UI is in its lifecycle.
type tttPhase int

const (
	tttChoosing tttPhase = iota // picking a side
	tttPlaying                  // waiting for the human move
	tttThinking                 // agent computing its reply
	tttOver                     // terminal board shown
)

// agentMoveMsg carries the minimax reply back into the update loop.
type agentMoveMsg struct {
	move tictactoe.Move
	ok   bool
}

// TicTacToeModel is the bubbletea model for the tic-tac-toe session.
// Finished games accumulate in results for the caller to persist.
type TicTacToeModel struct {
	styles  Styles
	phase   tttPhase
	board   tictactoe.Board
	human   tictactoe.Mark
	cursor  tictactoe.Move
	status  string
	results []ledger.GameResult
}

// NewTicTacToe creates the model in the side-selection phase.
func NewTicTacToe(styles Styles) TicTacToeModel {
	return TicTacToeModel{
		styles: styles,
		phase:  tttChoosing,
		cursor: tictactoe.Move{Row: 1, Col: 1},
	}
}

// Results returns the finished games, oldest first.
func (m TicTacToeModel) Results() []ledger.GameResult {
	return m.results
}

func (m TicTacToeModel) Init() tea.Cmd {
	return nil
}

// think computes the agent's reply off the update loop.
func think(board tictactoe.Board) tea.Cmd {
	return func() tea.Msg {
		move, ok := tictactoe.Minimax(board)
		return agentMoveMsg{move: move, ok: ok}
	}
}

func (m TicTacToeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case agentMoveMsg:
		if m.phase != tttThinking || !msg.ok {
			return m, nil
		}
		next, err := tictactoe.Apply(m.board, msg.move)
		if err != nil {
			m.status = m.styles.Error.Render(err.Error())
			return m, nil
		}
		m.board = next
		if tictactoe.Terminal(m.board) {
			return m.finishGame(), nil
		}
		m.phase = tttPlaying
		m.status = fmt.Sprintf("Your move (%s)", m.human)
		return m, nil
	}
	return m, nil
}

func (m TicTacToeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	switch m.phase {
	case tttChoosing:
		switch key {
		case "x", "X":
			m.human = tictactoe.X
			m.phase = tttPlaying
			m.status = "Your move (X)"
		case "o", "O":
			m.human = tictactoe.O
			m.phase = tttThinking
			m.status = "Thinking..."
			return m, think(m.board)
		}
		return m, nil

	case tttPlaying:
		switch key {
		case "up", "k":
			if m.cursor.Row > 0 {
				m.cursor.Row--
			}
		case "down", "j":
			if m.cursor.Row < 2 {
				m.cursor.Row++
			}
		case "left", "h":
			if m.cursor.Col > 0 {
				m.cursor.Col--
			}
		case "right", "l":
			if m.cursor.Col < 2 {
				m.cursor.Col++
			}
		case "enter", " ":
			next, err := tictactoe.Apply(m.board, m.cursor)
			if err != nil {
				m.status = m.styles.Warning.Render("That square is taken")
				return m, nil
			}
			m.board = next
			if tictactoe.Terminal(m.board) {
				return m.finishGame(), nil
			}
			m.phase = tttThinking
			m.status = "Thinking..."
			return m, think(m.board)
		}
		return m, nil

	case tttOver:
		if key == "r" {
			m.board = tictactoe.Board{}
			m.cursor = tictactoe.Move{Row: 1, Col: 1}
			m.phase = tttChoosing
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// finishGame records the terminal position and switches to the over phase.
func (m TicTacToeModel) finishGame() TicTacToeModel {
	winner := tictactoe.Winner(m.board)

	var outcome string
	switch {
	case winner == tictactoe.Empty:
		outcome = "draw"
		m.status = m.styles.Info.Render("Draw.")
	case winner == m.human:
		outcome = "win"
		m.status = m.styles.Success.Render("You win!")
	default:
		outcome = "loss"
		m.status = m.styles.Error.Render("You lose.")
	}

	moves := 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if m.board[r][c] != tictactoe.Empty {
				moves++
			}
		}
	}

	m.results = append(m.results, ledger.GameResult{
		Game:    "tictactoe",
		Outcome: outcome,
		Moves:   moves,
	})
	m.phase = tttOver
	return m
}

func (m TicTacToeModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Tic-Tac-Toe"))
	b.WriteString("\n\n")

	if m.phase == tttChoosing {
		b.WriteString(m.styles.Prompt.Render("Play as x or o? "))
		b.WriteString(m.styles.Muted.Render("(x moves first)"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Footer.Render("x/o: choose side • q: quit"))
		return b.String()
	}

	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.phase {
	case tttOver:
		b.WriteString(m.styles.Footer.Render("r: play again • q: quit"))
	default:
		b.WriteString(m.styles.Footer.Render("arrows/hjkl: move • enter: place • q: quit"))
	}
	return b.String()
}

func (m TicTacToeModel) renderBoard() string {
	var rows []string
	for r := 0; r < 3; r++ {
		var cells []string
		for c := 0; c < 3; c++ {
			mark := m.board[r][c]
			text := " " + mark.String() + " "
			if mark == tictactoe.Empty {
				text = " · "
			}

			style := m.styles.CellOpen
			if mark == tictactoe.Empty {
				style = m.styles.CellHidden
			}
			if m.phase == tttPlaying && m.cursor.Row == r && m.cursor.Col == c {
				style = m.styles.Cursor
			}
			cells = append(cells, style.Render(text))
		}
		rows = append(rows, strings.Join(cells, m.styles.Divider.Render("│")))
	}
	sep := m.styles.Divider.Render("───┼───┼───")
	return strings.Join(rows, "\n"+sep+"\n") + "\n"
}
