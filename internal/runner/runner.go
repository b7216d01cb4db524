// Package runner hands generated commands to the operating system.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"pong/internal/command"
)

// Runner prints or executes commands.
type Runner struct {
	Out       io.Writer
	Escalator string // sudo or doas
	Logger    *slog.Logger

	Geteuid  func() int
	LookPath func(file string) (string, error)
	// Exec replaces the current process. It only returns on failure.
	Exec    func(argv0 string, argv []string, envv []string) error
	Environ func() []string
}

// New returns a Runner bound to the current process.
func New(out io.Writer, escalator string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		Out:       out,
		Escalator: escalator,
		Logger:    logger,
		Geteuid:   os.Geteuid,
		LookPath:  exec.LookPath,
		Exec:      execProcess,
		Environ:   os.Environ,
	}
}

// Print writes the final command line without running it.
func (r *Runner) Print(cmd command.Command, helper string) error {
	_, err := fmt.Fprintln(r.Out, command.Delegate(cmd, helper).String())
	return err
}

// Argv returns the argument vector that Run executes: the delegated command,
// prefixed by the escalation program when root is needed and pacman runs directly.
// Delegated commands manage privileges themselves.
func (r *Runner) Argv(cmd command.Command, helper string) []string {
	delegated := command.Delegated(cmd, helper)
	final := command.Delegate(cmd, helper)

	if !cmd.Root || delegated || r.Geteuid() == 0 {
		r.Logger.Debug("no escalation", "root", cmd.Root, "delegated", delegated)
		return final.Args
	}
	argv := make([]string, 0, len(final.Args)+1)
	argv = append(argv, r.Escalator)
	return append(argv, final.Args...)
}

// Run replaces the current process with cmd. On success it does not return.
func (r *Runner) Run(cmd command.Command, helper string) error {
	argv := r.Argv(cmd, helper)
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	path, err := r.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("exec %s: %w", argv[0], err)
	}
	r.Logger.Debug("exec", "path", path, "argv", argv)
	if err := r.Exec(path, argv, r.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", argv[0], err)
	}
	return nil
}
