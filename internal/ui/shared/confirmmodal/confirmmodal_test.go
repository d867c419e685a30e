package confirmmodal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newVisible() Model {
	m := New(Config{Title: "Submit Application?", Message: "This finalizes your application."})
	m.Show()
	return m
}

func TestModal_StartsHidden(t *testing.T) {
	m := New(Config{Title: "T"})
	if m.IsVisible() {
		t.Error("expected modal to start hidden")
	}
	if m.View() != "" {
		t.Error("expected hidden modal to render nothing")
	}
}

func TestModal_EnterOnConfirm(t *testing.T) {
	m := newVisible()
	m, _, result := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if result != ResultConfirm {
		t.Errorf("expected ResultConfirm, got %d", result)
	}
	if m.IsVisible() {
		t.Error("expected modal to hide after confirm")
	}
}

func TestModal_EnterOnCancel(t *testing.T) {
	m := newVisible()
	m, _, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _, result := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if result != ResultCancel {
		t.Errorf("expected ResultCancel, got %d", result)
	}
}

func TestModal_EscCancels(t *testing.T) {
	m := newVisible()
	m, _, result := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if result != ResultCancel {
		t.Errorf("expected ResultCancel, got %d", result)
	}
	if m.IsVisible() {
		t.Error("expected modal to hide after esc")
	}
}

func TestModal_ShortcutKeys(t *testing.T) {
	m := newVisible()
	_, _, result := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if result != ResultConfirm {
		t.Errorf("expected y to confirm, got %d", result)
	}

	m = newVisible()
	_, _, result = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if result != ResultCancel {
		t.Errorf("expected n to cancel, got %d", result)
	}
}

func TestModal_HiddenIgnoresKeys(t *testing.T) {
	m := New(Config{Title: "T"})
	_, _, result := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if result != ResultNone {
		t.Errorf("expected ResultNone while hidden, got %d", result)
	}
}

func TestModal_ViewContainsTitleAndButtons(t *testing.T) {
	m := newVisible()
	view := m.View()
	if !strings.Contains(view, "Submit Application?") {
		t.Error("expected view to contain title")
	}
	if !strings.Contains(view, "Confirm") || !strings.Contains(view, "Cancel") {
		t.Error("expected view to contain default button labels")
	}
}
