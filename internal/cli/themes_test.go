package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestThemeListNavigation(t *testing.T) {
	m := NewThemeListModel("light")

	next, _ := m.Update(keyMsg("j"))
	m = next.(ThemeListModel)
	if m.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(ThemeListModel)
	if m.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.Cursor)
	}

	// Cursor stays in bounds.
	next, _ = m.Update(keyMsg("k"))
	m = next.(ThemeListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestThemeListSelect(t *testing.T) {
	m := NewThemeListModel("dim")
	if m.Cursor != 1 {
		t.Fatalf("initial cursor = %d, want 1", m.Cursor)
	}

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(ThemeListModel)
	if m.Selected != "dim" {
		t.Errorf("selected = %q, want dim", m.Selected)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestThemeListView(t *testing.T) {
	view := NewThemeListModel("light").View()
	for _, item := range themeItems {
		if !strings.Contains(view, item.name) {
			t.Errorf("view missing theme %q", item.name)
		}
	}
}
