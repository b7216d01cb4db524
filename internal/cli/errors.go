package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"pong/internal/command"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// classify maps engine errors to exit codes.
func classify(err error) error {
	switch {
	case errors.Is(err, command.ErrIncompatible):
		return &ExitError{Code: ExitUsageError, Message: err.Error(), Err: err}
	case errors.Is(err, command.ErrUnrepresentablePath):
		return &ExitError{Code: ExitConfigError, Message: err.Error(), Err: err}
	}
	return err
}

// ExitCode returns the exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneralError
}

// PrintError writes err as a single line. The prefix is colored when w is a terminal.
func PrintError(w io.Writer, err error) {
	style := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)
	fmt.Fprintf(w, "%s %v\n", style.Render("error:"), err)
}
