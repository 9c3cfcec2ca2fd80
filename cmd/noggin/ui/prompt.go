package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptModel asks for a single line of input. Enter submits, esc or
// ctrl+c cancels. The caller reads Value and Cancelled after Run.
type PromptModel struct {
	styles Styles
	title  string
	input  textinput.Model

	value     string
	cancelled bool
	done      bool
}

// NewPrompt builds a prompt with the given title above the input line.
func NewPrompt(styles Styles, title, placeholder string) PromptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 512
	ti.Width = 72
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.Body
	return PromptModel{styles: styles, title: title, input: ti}
}

// Value returns the submitted line, trimmed.
func (m PromptModel) Value() string { return m.value }

// Cancelled reports whether the user bailed out without submitting.
func (m PromptModel) Cancelled() bool { return m.cancelled }

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.value = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("enter: submit • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}
