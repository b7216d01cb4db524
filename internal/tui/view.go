package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pong/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	commandStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	programStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)

	rootStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

func (m ReviewModel) View() string {
	if m.Done {
		if m.Confirmed {
			return doneStyle.Render(model.IconConfirm+" running") + "\n"
		}
		return doneStyle.Render(model.IconAbort+" cancelled") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("pong " + m.Operation))
	b.WriteString("\n\n")

	prompt := model.IconUser
	if m.Root {
		prompt = model.IconRoot
	}
	line := prompt + " " + programStyle.Render(m.program()) + " " + strings.Join(m.rest(), " ")
	width := m.WindowSize.Width - 4
	if width > 20 {
		b.WriteString(commandStyle.Width(width).Render(line))
	} else {
		b.WriteString(commandStyle.Render(line))
	}
	b.WriteString("\n")

	if m.Delegated {
		b.WriteString(dimStyle.Render(model.IconDelegate + " handled by " + m.Helper))
		b.WriteString("\n")
	}
	if m.Root && !m.Delegated {
		b.WriteString(rootStyle.Render("requires elevated privileges"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func (m ReviewModel) program() string {
	if len(m.Argv) == 0 {
		return ""
	}
	return m.Argv[0]
}

func (m ReviewModel) rest() []string {
	if len(m.Argv) < 2 {
		return nil
	}
	return m.Argv[1:]
}
