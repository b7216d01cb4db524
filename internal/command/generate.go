package command

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"pong/internal/model"
)

// Programs a generated command can start with.
const (
	Pacman  = "pacman"  // package manager
	Pactree = "pactree" // dependency tree viewer
)

// Generator maps intents to commands.
type Generator struct {
	// StdoutIsTerminal is consulted on every tree generation when the color
	// mode is auto or unset.
	StdoutIsTerminal func() bool
}

// New returns a Generator that checks the real standard output.
func New() *Generator {
	return &Generator{StdoutIsTerminal: StdoutIsTerminal}
}

var defaultGenerator = New()

// Generate uses a Generator bound to the process standard output.
func Generate(in model.Intent, opts model.Options) (Command, error) {
	return defaultGenerator.Generate(in, opts)
}

// Generate builds the command for in. No partial command is returned on error.
func (g *Generator) Generate(in model.Intent, opts model.Options) (Command, error) {
	if err := checkPaths(opts); err != nil {
		return Command{}, err
	}

	switch in := in.(type) {
	case model.Tree:
		return g.tree(in, opts), nil
	case model.Install:
		return install(in, opts), nil
	case model.Remove:
		return remove(in, opts), nil
	case model.Upgrade:
		return upgrade(in, opts)
	case model.Clean:
		return clean(in, opts), nil
	case model.Pin:
		return pin(in, opts), nil
	case model.Search:
		return search(in, opts), nil
	case model.List:
		return list(in, opts), nil
	case model.Which:
		return which(in, opts), nil
	case model.View:
		return view(in, opts), nil
	}
	return Command{}, fmt.Errorf("unsupported intent %T", in)
}

// pacman starts a pacman command with the global options every operation shares.
func pacman(opts model.Options) *Builder {
	b := NewBuilder(Pacman)
	b.ArgIf("--print", opts.Simulate)
	b.ArgIf("--debug", opts.Debug)
	b.ArgIf("--noconfirm", opts.Yes)
	color := opts.Color
	if color == model.ColorUnset {
		color = model.ColorAuto
	}
	b.Option("--color", color.String())
	b.Option("--config", opts.Config)
	b.Option("--dbpath", opts.DBPath)
	b.Option("--gpgdir", opts.GPGDir)
	return b
}

func install(in model.Install, opts model.Options) Command {
	b := pacman(opts)
	b.SetRoot(true)
	b.SetDelegate(in.AUR)
	b.Arg("-S")
	b.Flag('q', opts.Quiet)
	b.Flag('w', in.Download)
	b.ArgIf("--needed", !in.Reinstall)
	b.Args(in.Packages...)
	return b.Command()
}

func remove(in model.Remove, opts model.Options) Command {
	b := pacman(opts)
	b.SetRoot(true)
	b.SetDelegate(!in.NoAUR)
	b.Arg("-R")
	b.Flag('n', !in.Save)
	b.Flag('s', !in.KeepOrphans)
	// A second s also removes orphans that were installed explicitly.
	b.Flag('s', in.Explicit)
	b.Flag('c', in.Cascade)
	b.Args(in.Packages...)
	return b.Command()
}

func upgrade(in model.Upgrade, opts model.Options) (Command, error) {
	if in.Refresh && in.NoRefresh {
		return Command{}, &IncompatibleError{Op: in.Name(), First: "refresh", Other: "no-refresh"}
	}
	b := pacman(opts)
	b.SetRoot(true)
	b.SetDelegate(!in.NoAUR)
	b.Arg("-S")
	b.Flag('q', opts.Quiet)
	b.Flag('w', in.Download)
	b.Flag('y', !in.NoRefresh)
	b.Flag('u', !in.Refresh)
	return b.Command(), nil
}

func clean(in model.Clean, opts model.Options) Command {
	b := pacman(opts)
	b.SetRoot(true)
	b.SetDelegate(!in.NoAUR)
	b.Arg("-Sc")
	b.Flag('c', in.All)
	return b.Command()
}

func pin(in model.Pin, opts model.Options) Command {
	b := pacman(opts)
	b.SetRoot(true)
	b.Arg("-D")
	b.Flag('q', opts.Quiet)
	b.ArgIf("--asexplicit", !in.Remove)
	b.ArgIf("--asdeps", in.Remove)
	b.Args(in.Packages...)
	return b.Command()
}

func search(in model.Search, opts model.Options) Command {
	b := pacman(opts)
	b.SetDelegate(in.AUR)
	if in.Installed {
		b.Arg("-Qs")
	} else {
		b.Arg("-Ss")
	}
	b.Flag('q', opts.Quiet)
	b.Args(in.Queries...)
	return b.Command()
}

func list(in model.List, opts model.Options) Command {
	b := pacman(opts)
	b.Arg("-Q")
	b.Flag('q', opts.Quiet)
	b.Flag('e', in.Explicit)
	b.Flag('d', in.Deps)
	b.Flag('m', in.NoSync)
	b.Flag('n', in.Sync)
	b.Flag('t', in.Free)
	b.Flag('u', in.Upgrades)
	return b.Command()
}

func which(in model.Which, opts model.Options) Command {
	b := pacman(opts)
	b.SetDelegate(in.AUR)
	if in.Sync {
		b.Arg("-F")
		b.Flag('q', opts.Quiet)
		b.Flag('x', in.Regex)
	} else {
		b.Arg("-Qo")
		b.Flag('q', opts.Quiet)
	}
	b.Args(in.Files...)
	return b.Command()
}

func view(in model.View, opts model.Options) Command {
	b := pacman(opts)
	switch {
	case in.Sync && in.Files:
		b.Arg("-F")
	case in.Sync:
		b.Arg("-S")
	default:
		b.Arg("-Q")
	}
	b.Flag('q', opts.Quiet)
	b.Flag('p', in.PackageFile)
	b.Flag('c', in.Changelog)
	b.Flag('l', in.Files)
	b.Flag('i', !in.Changelog && !in.Files)
	b.Flag('i', in.More)
	b.Args(in.Packages...)
	return b.Command()
}

// tree targets pactree, which only understands the debug and path options.
func (g *Generator) tree(in model.Tree, opts model.Options) Command {
	b := NewBuilder(Pactree)
	b.ArgIf("--debug", opts.Debug)
	b.Option("--config", opts.Config)
	b.Option("--dbpath", opts.DBPath)
	b.Option("--gpgdir", opts.GPGDir)

	b.Arg("-")
	b.Flag('a', in.ASCII)
	b.Flag('c', useColor(opts.Color, g.StdoutIsTerminal))
	b.Flag('r', in.Reverse)
	if b.Last() == "-" {
		b.DropLast()
	}

	Value(b, "-d", in.Depth)
	// --optional takes an optional argument, so getopt needs the attached form.
	if in.DepthOptional != nil {
		b.Arg("--optional=" + strconv.FormatUint(uint64(*in.DepthOptional), 10))
	}
	b.Arg(in.Package)
	return b.Command()
}

func checkPaths(opts model.Options) error {
	for _, p := range []struct{ option, path string }{
		{"--config", opts.Config},
		{"--dbpath", opts.DBPath},
		{"--gpgdir", opts.GPGDir},
	} {
		switch {
		case p.path == "":
		case !utf8.ValidString(p.path):
			return &PathError{Option: p.option, Path: p.path, Reason: "not valid UTF-8"}
		case strings.IndexByte(p.path, 0) >= 0:
			return &PathError{Option: p.option, Path: p.path, Reason: "contains a NUL byte"}
		}
	}
	return nil
}
