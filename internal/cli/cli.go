// Package cli parses the command line into an intent and global options,
// then prints, reviews or executes the generated command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pong/internal/command"
	"pong/internal/config"
	"pong/internal/model"
	"pong/internal/runner"
	"pong/internal/tui"
)

// App holds the collaborators of one invocation.
type App struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Config config.Config
	Logger *slog.Logger

	Generator *command.Generator
	Runner    *runner.Runner
	LookPath  func(file string) (string, error)

	// IsInteractive reports whether a review prompt can be shown.
	IsInteractive func() bool
	Review        func(m tui.ReviewModel) (bool, error)
	CheckUpdate   func(w io.Writer, current string)
}

// NewApp wires an App to the process standard streams.
func NewApp(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
		Config:    cfg,
		Logger:    logger,
		Generator: command.New(),
		Runner:    runner.New(os.Stdout, cfg.Escalate, logger),
		LookPath:  exec.LookPath,
		IsInteractive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
		},
		Review: func(m tui.ReviewModel) (bool, error) {
			return tui.Review(m, os.Stdin, os.Stderr)
		},
	}
}

// Execute runs the command line args (without the program name).
// Errors raised while parsing, before any command is generated, exit with ExitUsageError.
func (a *App) Execute(args []string) error {
	dispatched := false
	root := a.newRootCommand(func() { dispatched = true })
	root.SetArgs(args)
	err := root.Execute()
	if err == nil || dispatched {
		return err
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitUsageError, Message: err.Error(), Err: err}
}

// NewRootCommand builds the command tree.
func (a *App) NewRootCommand() *cobra.Command {
	return a.newRootCommand(func() {})
}

func (a *App) newRootCommand(onDispatch func()) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "pong [options] <command>",
		Short: "A friendlier front end for pacman",
		Long: `pong translates short, memorable commands into pacman and pactree invocations.

Global options go before the command. Use -g to print the underlying
command instead of running it.`,
		Example: `  pong install vim          # pacman -S --needed vim
  pong -g upgrade           # print the upgrade command
  pong tree -r glibc        # reverse dependency tree
  pong --aur-helper paru remove foo`,
		Version:           model.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		TraverseChildren:  true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		Args:              cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &ExitError{Code: ExitUsageError, Message: fmt.Sprintf("unknown command %q", args[0])}
			}
			return cmd.Help()
		},
	}
	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)
	g.register(root.Flags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsageError, Message: err.Error(), Err: err}
	})

	run := func(in model.Intent) error {
		onDispatch()
		return a.dispatch(g, in)
	}
	root.AddCommand(
		newInstallCommand(run),
		newRemoveCommand(run),
		newUpgradeCommand(run),
		newCleanCommand(run),
		newSearchCommand(run),
		newListCommand(run),
		newWhichCommand(run),
		newViewCommand(run),
		newTreeCommand(run),
		newPinCommand(run),
		a.newVersionCommand(),
	)
	return root
}

// dispatch generates the command for in and hands it to the runner.
func (a *App) dispatch(g *globalFlags, in model.Intent) error {
	opts := g.options(a)
	cmd, err := a.Generator.Generate(in, opts)
	if err != nil {
		return classify(err)
	}
	a.Logger.Debug("generated command",
		"intent", in.Name(),
		"args", cmd.Args,
		"root", cmd.Root,
		"delegate", cmd.Delegate,
		"helper", opts.Helper,
	)

	if g.generate {
		return a.Runner.Print(cmd, opts.Helper)
	}

	if g.review || a.Config.Review {
		if !a.IsInteractive() {
			return &ExitError{Code: ExitUsageError, Message: "--review needs an interactive terminal"}
		}
		m := tui.NewReviewModel(in.Name(), a.Runner.Argv(cmd, opts.Helper), cmd.Root, command.Delegated(cmd, opts.Helper), opts.Helper)
		ok, err := a.Review(m)
		if err != nil {
			return err
		}
		if !ok {
			return &ExitError{Code: ExitGeneralError, Message: "aborted"}
		}
	}

	if err := a.Runner.Run(cmd, opts.Helper); err != nil {
		return fmt.Errorf("%s: %w", in.Name(), err)
	}
	return nil
}
