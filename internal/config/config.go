// Package config loads the pong configuration file.
//
// The file is TOML and every key is optional:
//
//	aur_helper = "auto"   # "", "auto" or a program name such as "paru"
//	color      = "auto"   # auto, always or never
//	no_confirm = false
//	escalate   = "sudo"   # sudo or doas
//	review     = false
//	log_level  = "warn"   # debug, info, warn or error
//
// Lookup order: $PONG_CONFIG, $XDG_CONFIG_HOME/pong/config.toml,
// ~/.config/pong/config.toml. A missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"pong/internal/model"
)

// Environment variables read by Load.
const (
	EnvPath      = "PONG_CONFIG"
	EnvAURHelper = "PONG_AUR_HELPER"
	EnvLogLevel  = "PONG_LOG_LEVEL"
)

// Config holds the user's persistent preferences.
type Config struct {
	AURHelper string `toml:"aur_helper"`
	Color     string `toml:"color"`
	NoConfirm bool   `toml:"no_confirm"`
	Escalate  string `toml:"escalate"`
	Review    bool   `toml:"review"`
	LogLevel  string `toml:"log_level"`

	// Path is the file the values were read from, empty when defaults were used.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Escalate: "sudo",
		LogLevel: "warn",
	}
}

// Path returns the configuration file location.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "pong", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pong", "config.toml"), nil
}

// Load reads the configuration from Path, then applies environment overrides.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

// LoadFile reads path on top of the defaults. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("no config file", "path", path)
	case err != nil:
		return Config{}, fmt.Errorf("read config: %s: %w", path, err)
	default:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("read config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
		cfg.Path = path
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides replaces file values with the PONG_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if helper, ok := os.LookupEnv(EnvAURHelper); ok {
		c.AURHelper = helper
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	var errs []error
	if _, err := model.ParseColorMode(c.Color); err != nil {
		errs = append(errs, ValidationError{Field: "color", Message: err.Error()})
	}
	switch c.Escalate {
	case "sudo", "doas":
	default:
		errs = append(errs, ValidationError{
			Field:   "escalate",
			Message: fmt.Sprintf("invalid escalation program %q, must be one of: sudo, doas", c.Escalate),
		})
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, ValidationError{Field: "log_level", Message: err.Error()})
	}
	return errors.Join(errs...)
}

// ColorMode returns the configured color mode; ColorUnset when not set.
func (c Config) ColorMode() model.ColorMode {
	mode, _ := model.ParseColorMode(c.Color)
	return mode
}

// Level converts log_level to a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	return level, nil
}
