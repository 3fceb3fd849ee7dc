package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

type themeItem struct {
	name        string
	description string
}

var themeItems = []themeItem{
	{"light", "white card, dark text"},
	{"dim", "muted navy background"},
	{"dark", "pure black background"},
	{"black", "pure black, high contrast"},
}

// =============================================================================
// ThemeListModel - Interactive theme selection
// =============================================================================

// ThemeListModel is the bubbletea model for interactive theme selection.
type ThemeListModel struct {
	Cursor   int
	Selected string
}

// NewThemeListModel creates a theme list with the cursor on current.
func NewThemeListModel(current string) ThemeListModel {
	m := ThemeListModel{}
	for i, item := range themeItems {
		if item.name == current {
			m.Cursor = i
		}
	}
	return m
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(themeItems)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = themeItems[m.Cursor].name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, item := range themeItems {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = listSelectedStyle.Render("> ")
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(item.name) + "  " + listDimStyle.Render(item.description))
		b.WriteString("\n")
	}
	return b.String()
}

// pickTheme runs the interactive theme picker and returns the chosen
// theme name, or "" if the user cancelled.
func pickTheme(current string) (string, error) {
	final, err := tea.NewProgram(NewThemeListModel(current)).Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(ThemeListModel); ok {
		return m.Selected, nil
	}
	return "", nil
}
