package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Review shows m on out and reports whether the user confirmed.
func Review(m ReviewModel, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("review: %w", err)
	}
	result, ok := final.(ReviewModel)
	if !ok {
		return false, fmt.Errorf("review: unexpected model %T", final)
	}
	return result.Confirmed, nil
}
