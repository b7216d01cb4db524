package cli

import (
	"github.com/spf13/pflag"

	"pong/internal/model"
	"pong/internal/runner"
)

// globalFlags are the options accepted before the subcommand.
type globalFlags struct {
	generate  bool
	debug     bool
	simulate  bool
	quiet     bool
	yes       bool
	color     model.ColorMode
	config    string
	dbPath    string
	gpgDir    string
	aurHelper string
	review    bool

	set *pflag.FlagSet
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	g.set = fs
	fs.BoolVarP(&g.generate, "generate-command", "g", false, "Print the underlying command without executing it")
	fs.BoolVarP(&g.debug, "debug", "d", false, "Display debug messages")
	fs.BoolVarP(&g.simulate, "simulate", "s", false, "Simulate a test run without performing any changes")
	fs.BoolVarP(&g.quiet, "quiet", "q", false, "Show less information for certain operations")
	fs.BoolVarP(&g.yes, "yes", "y", false, "Never ask for confirmation")
	fs.VarP(&g.color, "color", "c", "Colorize output: auto, always or never")
	fs.StringVar(&g.config, "config", "", "Specify an alternate pacman configuration `FILE`")
	fs.StringVar(&g.dbPath, "dbpath", "", "Specify an alternate database location `DIR`")
	fs.StringVar(&g.gpgDir, "gpgdir", "", "Specify an alternate directory for GnuPG `DIR`")
	fs.StringVar(&g.aurHelper, "aur-helper", "", "AUR helper to delegate to (\"auto\" searches PATH, \"\" disables)")
	fs.BoolVar(&g.review, "review", false, "Review the command in an interactive prompt before running it")
}

// options merges the flags over the configuration file.
func (g *globalFlags) options(a *App) model.Options {
	color := g.color
	if !g.set.Changed("color") {
		color = a.Config.ColorMode()
	}
	helper := a.Config.AURHelper
	if g.set.Changed("aur-helper") {
		helper = g.aurHelper
	}
	return model.Options{
		Debug:    g.debug,
		Simulate: g.simulate,
		Quiet:    g.quiet,
		Yes:      g.yes || a.Config.NoConfirm,
		Color:    color,
		Config:   g.config,
		DBPath:   g.dbPath,
		GPGDir:   g.gpgDir,
		Helper:   runner.DetectHelper(helper, a.LookPath),
	}
}
