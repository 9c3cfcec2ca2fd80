package ui

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"noggin/internal/ledger"
	"noggin/internal/minesweeper"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// msPhase tracks whether the minesweeper board is live or finished.
type msPhase int

const (
	msPlaying msPhase = iota
	msOver
)

// MinesweeperModel is the bubbletea model for the minesweeper session. The
// knowledge agent rides along: every reveal feeds it, and 'a' lets it pick
// the next move. Finished games accumulate in results.
type MinesweeperModel struct {
	styles Styles
	game   *minesweeper.Game
	agent  *minesweeper.Agent
	rng    *rand.Rand

	height, width, mines int

	cursor  minesweeper.Cell
	phase   msPhase
	won     bool
	moves   int
	status  string
	results []ledger.GameResult
}

// NewMinesweeper creates a model with a freshly mined board. A nil rng is
// seeded from the clock.
func NewMinesweeper(styles Styles, height, width, mines int, rng *rand.Rand) (MinesweeperModel, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	game, err := minesweeper.NewGame(height, width, mines, rng)
	if err != nil {
		return MinesweeperModel{}, err
	}
	return MinesweeperModel{
		styles: styles,
		game:   game,
		agent:  minesweeper.NewAgent(height, width),
		rng:    rng,
		height: height,
		width:  width,
		mines:  mines,
	}, nil
}

// Results returns the finished games, oldest first.
func (m MinesweeperModel) Results() []ledger.GameResult {
	return m.results
}

func (m MinesweeperModel) Init() tea.Cmd {
	return nil
}

func (m MinesweeperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.phase == msOver {
		if key.String() == "r" {
			return m.restart(), nil
		}
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down", "j":
		if m.cursor.Row < m.height-1 {
			m.cursor.Row++
		}
	case "left", "h":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "right", "l":
		if m.cursor.Col < m.width-1 {
			m.cursor.Col++
		}
	case "enter", " ":
		m = m.reveal(m.cursor)
	case "f":
		m.game.ToggleFlag(m.cursor)
		if m.game.Won() {
			m = m.finishGame(true)
		}
	case "a":
		m = m.agentMove()
	}
	return m, nil
}

// reveal uncovers a cell, feeds the agent, and checks for an ending.
func (m MinesweeperModel) reveal(c minesweeper.Cell) MinesweeperModel {
	if m.game.Flagged(c) {
		m.status = m.styles.Warning.Render("Unflag it first")
		return m
	}
	if m.game.Revealed(c) {
		return m
	}

	count, mine := m.game.Reveal(c)
	m.moves++
	if mine {
		return m.finishGame(false)
	}

	m.agent.AddKnowledge(c, count)
	if m.game.Won() {
		return m.finishGame(true)
	}
	m.status = ""
	return m
}

// agentMove asks the knowledge agent for a move: a known-safe cell first,
// then a random cell that is neither played nor a known mine.
func (m MinesweeperModel) agentMove() MinesweeperModel {
	if c, ok := m.agent.SafeMove(); ok {
		m.cursor = c
		m = m.reveal(c)
		if m.phase == msPlaying {
			m.status = fmt.Sprintf("Agent reveals (%d, %d) as safe", c.Row, c.Col)
		}
		return m
	}
	if c, ok := m.agent.RandomMove(m.rng); ok {
		m.cursor = c
		m = m.reveal(c)
		if m.phase == msPlaying {
			m.status = fmt.Sprintf("Agent guesses (%d, %d)", c.Row, c.Col)
		}
		return m
	}
	m.status = m.styles.Muted.Render("Agent has no moves left")
	return m
}

// finishGame records the outcome and switches to the over phase.
func (m MinesweeperModel) finishGame(won bool) MinesweeperModel {
	m.phase = msOver
	m.won = won
	if won {
		m.status = m.styles.Success.Render("Cleared!")
	} else {
		m.status = m.styles.Error.Render("Boom. You hit a mine.")
	}

	outcome := "loss"
	if won {
		outcome = "win"
	}
	m.results = append(m.results, ledger.GameResult{
		Game:    "minesweeper",
		Outcome: outcome,
		Moves:   m.moves,
	})
	return m
}

// restart starts a new board with the same dimensions, keeping results.
func (m MinesweeperModel) restart() MinesweeperModel {
	game, err := minesweeper.NewGame(m.height, m.width, m.mines, m.rng)
	if err != nil {
		m.status = m.styles.Error.Render(err.Error())
		return m
	}
	m.game = game
	m.agent = minesweeper.NewAgent(m.height, m.width)
	m.cursor = minesweeper.Cell{}
	m.phase = msPlaying
	m.won = false
	m.moves = 0
	m.status = ""
	return m
}

func (m MinesweeperModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Minesweeper"))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Mines: %d  Flags: %d  Moves: %d",
		m.game.MineCount(), m.game.FlagCount(), m.moves)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.phase == msOver {
		b.WriteString(m.styles.Footer.Render("r: play again • q: quit"))
	} else {
		b.WriteString(m.styles.Footer.Render("arrows/hjkl: move • enter: reveal • f: flag • a: agent move • q: quit"))
	}
	return b.String()
}

func (m MinesweeperModel) renderGrid() string {
	lost := m.phase == msOver && !m.won

	var rows []string
	for r := 0; r < m.height; r++ {
		var cells []string
		for c := 0; c < m.width; c++ {
			cell := minesweeper.Cell{Row: r, Col: c}
			symbol, style := m.cellSymbol(cell, lost)
			if m.phase == msPlaying && cell == m.cursor {
				style = m.styles.Cursor
			}
			cells = append(cells, style.Render(symbol))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m MinesweeperModel) cellSymbol(c minesweeper.Cell, lost bool) (string, lipgloss.Style) {
	switch {
	case lost && m.game.IsMine(c):
		return "✱", m.styles.CellMine
	case m.game.Flagged(c):
		return "⚑", m.styles.CellFlag
	case m.game.Revealed(c):
		if n := m.game.NearbyMines(c); n > 0 {
			return strconv.Itoa(n), m.styles.CellOpen
		}
		return "·", m.styles.Muted
	default:
		return "■", m.styles.CellHidden
	}
}
