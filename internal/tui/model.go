// Package tui shows the final command and asks for confirmation before it runs.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y/enter", "run"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "N", "q", "esc", "ctrl+c"),
		key.WithHelp("n/q/esc", "cancel"),
	),
}

// ReviewModel holds the review screen state.
type ReviewModel struct {
	// Data
	Argv      []string // exactly what will be executed
	Operation string   // subcommand name, for the title
	Root      bool
	Delegated bool
	Helper    string

	// Result
	Confirmed bool
	Done      bool

	// UI State
	WindowSize tea.WindowSizeMsg
	help       help.Model
}

// NewReviewModel returns the initial state.
func NewReviewModel(operation string, argv []string, root, delegated bool, helper string) ReviewModel {
	return ReviewModel{
		Argv:      argv,
		Operation: operation,
		Root:      root,
		Delegated: delegated,
		Helper:    helper,
		help:      help.New(),
	}
}

func (m ReviewModel) Init() tea.Cmd {
	return nil
}
