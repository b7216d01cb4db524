package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pong/internal/command"
	"pong/internal/config"
	"pong/internal/runner"
	"pong/internal/tui"
)

type testApp struct {
	*App
	out    *bytes.Buffer
	execed [][]string
}

func newTestApp(t *testing.T, cfg config.Config) *testApp {
	t.Helper()
	ta := &testApp{out: &bytes.Buffer{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lookPath := func(file string) (string, error) {
		switch file {
		case "pacman", "pactree", "sudo", "paru":
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
	r := &runner.Runner{
		Out:       ta.out,
		Escalator: cfg.Escalate,
		Logger:    logger,
		Geteuid:   func() int { return 1000 },
		LookPath:  lookPath,
		Exec: func(_ string, argv []string, _ []string) error {
			ta.execed = append(ta.execed, argv)
			return nil
		},
		Environ: func() []string { return nil },
	}
	ta.App = &App{
		In:            strings.NewReader(""),
		Out:           ta.out,
		Err:           &bytes.Buffer{},
		Config:        cfg,
		Logger:        logger,
		Generator:     &command.Generator{StdoutIsTerminal: func() bool { return true }},
		Runner:        r,
		LookPath:      lookPath,
		IsInteractive: func() bool { return true },
		Review: func(tui.ReviewModel) (bool, error) {
			t.Fatal("unexpected review")
			return false, nil
		},
	}
	return ta
}

// generates runs pong with -g prepended and returns the printed command.
func generates(t *testing.T, args ...string) string {
	t.Helper()
	ta := newTestApp(t, config.Default())
	require.NoError(t, ta.Execute(append([]string{"-g"}, args...)))
	return strings.TrimSuffix(ta.out.String(), "\n")
}

func TestUpgrade(t *testing.T) {
	assert.Equal(t, "pacman --color auto -Syu", generates(t, "upgrade"))
	assert.Equal(t, "pacman --color never -Syu", generates(t, "--color", "never", "upgrade"))
	assert.Equal(t, "pacman --color auto -Syu", generates(t, "--color", "auto", "upgrade"))
	assert.Equal(t, "pacman --color auto -Syu", generates(t, "-c", "auto", "upgrade"))
	assert.Equal(t, "pacman --color always -Syu", generates(t, "--color", "always", "upgrade"))
	assert.Equal(t, "pacman --print --color always -Syu", generates(t, "--simulate", "--color", "always", "upgrade"))
	assert.Equal(t, "pacman --color auto -Sqwu", generates(t, "-q", "u", "-n", "-d"))
}

func TestTree(t *testing.T) {
	assert.Equal(t, "pactree -c abc", generates(t, "tree", "abc"))
	assert.Equal(t, "pactree abc", generates(t, "--color", "never", "tree", "abc"))
	assert.Equal(t, "pactree --debug -ar -d 0 --optional=2 abc", generates(t, "-d", "-c", "never", "t", "-a", "-r", "-d", "0", "-o", "2", "abc"))
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"install", "vim", "git"}, "pacman --color auto -S --needed vim git"},
		{[]string{"-q", "i", "-d", "foo"}, "pacman --color auto -Sqw --needed foo"},
		{[]string{"i", "-r", "foo"}, "pacman --color auto -S foo"},
		{[]string{"-y", "remove", "-c", "foo"}, "pacman --noconfirm --color auto -Rnsc foo"},
		{[]string{"r", "-k", "-s", "foo"}, "pacman --color auto -R foo"},
		{[]string{"clean", "-a"}, "pacman --color auto -Scc"},
		{[]string{"search", "-i", "vim"}, "pacman --color auto -Qs vim"},
		{[]string{"list", "-e", "-n", "-u"}, "pacman --color auto -Qemu"},
		{[]string{"which", "/usr/bin/ls"}, "pacman --color auto -Qo /usr/bin/ls"},
		{[]string{"w", "-s", "-x", "ls$"}, "pacman --color auto -Fx ls$"},
		{[]string{"view", "-m", "foo"}, "pacman --color auto -Qii foo"},
		{[]string{"v", "-s", "-f", "foo"}, "pacman --color auto -Fl foo"},
		{[]string{"pin", "-r", "foo"}, "pacman --color auto -D --asdeps foo"},
		{[]string{"--config", "/etc/alt.conf", "--dbpath", "/db", "--gpgdir", "/gpg", "p", "foo"}, "pacman --color auto --config /etc/alt.conf --dbpath /db --gpgdir /gpg -D --asexplicit foo"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			assert.Equal(t, tt.want, generates(t, tt.args...))
		})
	}
}

func TestUpgradeIncompatible(t *testing.T) {
	ta := newTestApp(t, config.Default())
	err := ta.Execute([]string{"upgrade", "--refresh", "--no-refresh"})
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, ExitCode(err))
	assert.True(t, errors.Is(err, command.ErrIncompatible))
	assert.Empty(t, ta.out.String())
	assert.Empty(t, ta.execed)
}

func TestParserConflicts(t *testing.T) {
	for _, args := range [][]string{
		{"install", "-r", "-d", "foo"},
		{"remove", "-e", "-k", "foo"},
		{"list", "-e", "-d"},
		{"list", "-s", "-n"},
		{"view", "-s", "-c", "foo"},
		{"view", "-m", "-f", "foo"},
		{"which", "-x", "foo"},
		{"which", "-u", "foo"},
		{"tree"},
		{"upgrade", "extra"},
		{"--color", "sometimes", "upgrade"},
		{"upgrade", "--bogus"},
		{"--bogus", "upgrade"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			ta := newTestApp(t, config.Default())
			err := ta.Execute(args)
			require.Error(t, err)
			assert.Equal(t, ExitUsageError, ExitCode(err))
			assert.Empty(t, ta.execed)
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	ta := newTestApp(t, config.Default())
	err := ta.Execute([]string{"instal", "vim"})
	require.Error(t, err)
	assert.Equal(t, ExitUsageError, ExitCode(err))
	assert.Equal(t, `unknown command "instal"`, err.Error())
	assert.Empty(t, ta.execed)
	assert.Empty(t, ta.out.String())
}

func TestNoCommandPrintsHelp(t *testing.T) {
	ta := newTestApp(t, config.Default())
	require.NoError(t, ta.Execute(nil))
	assert.Contains(t, ta.out.String(), "pong translates short, memorable commands")
	assert.Empty(t, ta.execed)
}

func TestRunErrorsKeepGeneralExitCode(t *testing.T) {
	ta := newTestApp(t, config.Default())
	ta.Runner.Exec = func(string, []string, []string) error { return errors.New("permission denied") }
	err := ta.Execute([]string{"upgrade"})
	require.Error(t, err)
	assert.Equal(t, ExitGeneralError, ExitCode(err))
}

func TestConfigDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Color = "never"
	cfg.NoConfirm = true
	ta := newTestApp(t, cfg)
	require.NoError(t, ta.Execute([]string{"-g", "upgrade"}))
	assert.Equal(t, "pacman --noconfirm --color never -Syu\n", ta.out.String())

	ta = newTestApp(t, cfg)
	require.NoError(t, ta.Execute([]string{"-g", "-c", "always", "upgrade"}))
	assert.Equal(t, "pacman --noconfirm --color always -Syu\n", ta.out.String())
}

func TestDelegation(t *testing.T) {
	cfg := config.Default()
	cfg.AURHelper = "paru"

	ta := newTestApp(t, cfg)
	require.NoError(t, ta.Execute([]string{"-g", "upgrade"}))
	assert.Equal(t, "paru --color auto -Syu\n", ta.out.String())

	ta = newTestApp(t, cfg)
	require.NoError(t, ta.Execute([]string{"-g", "upgrade", "--no-aur"}))
	assert.Equal(t, "pacman --color auto -Syu\n", ta.out.String())

	ta = newTestApp(t, cfg)
	require.NoError(t, ta.Execute([]string{"-g", "--aur-helper", "", "upgrade"}))
	assert.Equal(t, "pacman --color auto -Syu\n", ta.out.String())

	ta = newTestApp(t, config.Default())
	require.NoError(t, ta.Execute([]string{"-g", "--aur-helper", "auto", "search", "-u", "vim"}))
	assert.Equal(t, "paru --color auto -Ss vim\n", ta.out.String())
}

func TestExecute(t *testing.T) {
	ta := newTestApp(t, config.Default())
	require.NoError(t, ta.Execute([]string{"install", "vim"}))
	require.Len(t, ta.execed, 1)
	assert.Equal(t, []string{"sudo", "pacman", "--color", "auto", "-S", "--needed", "vim"}, ta.execed[0])

	cfg := config.Default()
	cfg.AURHelper = "paru"
	ta = newTestApp(t, cfg)
	require.NoError(t, ta.Execute([]string{"remove", "foo"}))
	require.Len(t, ta.execed, 1)
	assert.Equal(t, []string{"paru", "--color", "auto", "-Rns", "foo"}, ta.execed[0])

	ta = newTestApp(t, config.Default())
	require.NoError(t, ta.Execute([]string{"search", "vim"}))
	assert.Equal(t, []string{"pacman", "--color", "auto", "-Ss", "vim"}, ta.execed[0])
}

func TestExecuteMissingProgram(t *testing.T) {
	cfg := config.Default()
	cfg.AURHelper = "yay"
	ta := newTestApp(t, cfg)
	err := ta.Execute([]string{"upgrade"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upgrade: exec yay")
	assert.Equal(t, ExitGeneralError, ExitCode(err))
}

func TestReview(t *testing.T) {
	ta := newTestApp(t, config.Default())
	var reviewed tui.ReviewModel
	ta.Review = func(m tui.ReviewModel) (bool, error) {
		reviewed = m
		return true, nil
	}
	require.NoError(t, ta.Execute([]string{"--review", "upgrade"}))
	assert.Equal(t, "upgrade", reviewed.Operation)
	assert.Equal(t, []string{"sudo", "pacman", "--color", "auto", "-Syu"}, reviewed.Argv)
	assert.True(t, reviewed.Root)
	assert.Len(t, ta.execed, 1)

	ta = newTestApp(t, config.Default())
	ta.Review = func(tui.ReviewModel) (bool, error) { return false, nil }
	err := ta.Execute([]string{"--review", "upgrade"})
	require.Error(t, err)
	assert.Equal(t, "aborted", err.Error())
	assert.Empty(t, ta.execed)

	ta = newTestApp(t, config.Default())
	ta.IsInteractive = func() bool { return false }
	err = ta.Execute([]string{"--review", "upgrade"})
	assert.Equal(t, ExitUsageError, ExitCode(err))
}

func TestGenerateSkipsReview(t *testing.T) {
	cfg := config.Default()
	cfg.Review = true
	ta := newTestApp(t, cfg)
	require.NoError(t, ta.Execute([]string{"-g", "clean"}))
	assert.Equal(t, "pacman --color auto -Sc\n", ta.out.String())
}

func TestVersion(t *testing.T) {
	ta := newTestApp(t, config.Default())
	var checked string
	ta.CheckUpdate = func(w io.Writer, current string) {
		checked = current
		io.WriteString(w, "up to date\n")
	}
	require.NoError(t, ta.Execute([]string{"version"}))
	assert.Empty(t, checked)

	require.NoError(t, ta.Execute([]string{"version", "--check"}))
	assert.NotEmpty(t, checked)
	assert.Contains(t, ta.out.String(), "up to date")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("upgrade: --refresh cannot be used with --no-refresh"))
	assert.Equal(t, "error: upgrade: --refresh cannot be used with --no-refresh\n", buf.String())
}
