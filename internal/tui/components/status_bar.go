package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"phonefield/internal/tui/styles"
)

// StatusBar shows the most recent emission below the field.
type StatusBar struct {
	text  string
	style lipgloss.Style
}

func NewStatusBar() *StatusBar {
	return &StatusBar{
		style: styles.Theme.Help,
	}
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}
	return s.style.Render(s.text)
}
