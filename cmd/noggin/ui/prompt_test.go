package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pressPrompt(t *testing.T, m PromptModel, msg tea.Msg) (PromptModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(PromptModel)
	if !ok {
		t.Fatalf("Update returned %T, want PromptModel", next)
	}
	return model, cmd
}

func TestPromptSubmit(t *testing.T) {
	m := NewPrompt(DefaultStyles(), "Sentence", "type here")

	m, _ = pressPrompt(t, m, keyRunes("holmes sat"))
	m, cmd := pressPrompt(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Cancelled() {
		t.Fatal("expected prompt not to be cancelled")
	}
	if got := m.Value(); got != "holmes sat" {
		t.Errorf("expected value %q, got %q", "holmes sat", got)
	}
	if cmd == nil {
		t.Fatal("expected quit command after enter")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg after enter")
	}
}

func TestPromptTrimsValue(t *testing.T) {
	m := NewPrompt(DefaultStyles(), "Sentence", "")

	m, _ = pressPrompt(t, m, keyRunes("  spaced out  "))
	m, _ = pressPrompt(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Value(); got != "spaced out" {
		t.Errorf("expected trimmed value, got %q", got)
	}
}

func TestPromptCancel(t *testing.T) {
	m := NewPrompt(DefaultStyles(), "Sentence", "")

	m, cmd := pressPrompt(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Cancelled() {
		t.Fatal("expected prompt to be cancelled on esc")
	}
	if cmd == nil {
		t.Fatal("expected quit command on esc")
	}
}

func TestPromptViewClearsWhenDone(t *testing.T) {
	m := NewPrompt(DefaultStyles(), "Sentence", "")
	if m.View() == "" {
		t.Fatal("expected a visible prompt before submit")
	}

	m, _ = pressPrompt(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.View() != "" {
		t.Error("expected empty view after submit")
	}
}
