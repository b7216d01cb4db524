package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Confirm):
			m.Confirmed = true
			m.Done = true
			return m, tea.Quit
		case key.Matches(msg, keys.Cancel):
			m.Confirmed = false
			m.Done = true
			return m, tea.Quit
		}
	}
	return m, nil
}
