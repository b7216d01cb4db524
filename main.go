package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tcnksm/go-latest"

	"pong/internal/cli"
	"pong/internal/config"
	"pong/internal/model"
)

func checkUpdate(w io.Writer, currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      model.RepoOwner,
		Repository: model.RepoName,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		slog.Debug("update check failed", "err", err)
		return // Silently fail
	}

	if res.Outdated {
		fmt.Fprintf(w, "A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintf(w, "Download it from https://github.com/%s/%s/releases\n", model.RepoOwner, model.RepoName)
	} else {
		fmt.Fprintf(w, "You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	// Use a minimal logger until the configured level is known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		return cli.ExitConfigError
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Debug("config loaded", "path", cfg.Path, "aur_helper", cfg.AURHelper, "escalate", cfg.Escalate)

	app := cli.NewApp(cfg, logger)
	app.CheckUpdate = checkUpdate
	if err := app.Execute(args); err != nil {
		cli.PrintError(os.Stderr, err)
		return cli.ExitCode(err)
	}
	return cli.ExitSuccess
}
