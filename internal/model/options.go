package model

import (
	"fmt"
	"strings"
)

// ColorMode selects when the underlying programs colorize their output.
type ColorMode int

const (
	ColorUnset ColorMode = iota // not given on the command line
	ColorAuto
	ColorAlways
	ColorNever
)

var colorNames = map[ColorMode]string{
	ColorUnset:  "",
	ColorAuto:   "auto",
	ColorAlways: "always",
	ColorNever:  "never",
}

func (c ColorMode) String() string {
	return colorNames[c]
}

// Set parses a color name. It makes ColorMode usable as a pflag.Value.
func (c *ColorMode) Set(s string) error {
	mode, err := ParseColorMode(s)
	if err != nil {
		return err
	}
	*c = mode
	return nil
}

// Type is shown in flag usage.
func (c *ColorMode) Type() string {
	return "when"
}

// ParseColorMode accepts auto, always and never (case-insensitive).
// The empty string yields ColorUnset.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ColorUnset, nil
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorUnset, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Options is the snapshot of global settings for one invocation.
// It is built once by the CLI and never modified afterwards.
type Options struct {
	Debug    bool      // --debug is forwarded to pacman and pactree
	Simulate bool      // pacman --print
	Quiet    bool      // adds q to the operation flag
	Yes      bool      // pacman --noconfirm
	Color    ColorMode // ColorUnset renders as auto for pacman

	Config string // alternate pacman.conf, empty when not set
	DBPath string // alternate database directory
	GPGDir string // alternate GnuPG directory

	Helper string // AUR helper program, empty when none is configured
}
