// Package config loads asciiviz settings from a TOML file.
//
// The default location follows the XDG base directory convention:
// $XDG_CONFIG_HOME/asciiviz/config.toml, falling back to
// ~/.config/asciiviz/config.toml. A missing file at the default location is
// not an error; an explicitly requested file must exist.
//
// Example file:
//
//	format = "text"       # text, dot or svg
//	label = "Step 1"      # default array label
//	max_depth = 16        # 0 = unlimited
//	no_color = false
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/asciiviz/pkg/errors"
)

const (
	appName  = "asciiviz"
	fileName = "config.toml"
)

// Output formats.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// Config holds user defaults. Command-line flags override every field.
type Config struct {
	Format   string `toml:"format"`
	Label    string `toml:"label"`
	MaxDepth int    `toml:"max_depth"`
	NoColor  bool   `toml:"no_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Format: FormatText}
}

// Validate checks every field.
func (c Config) Validate() error {
	if !ValidFormats[c.Format] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid format: %s (must be 'text', 'dot', or 'svg')", c.Format)
	}
	if c.MaxDepth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_depth must be >= 0, got %d", c.MaxDepth)
	}
	if err := errors.ValidateLabel(c.Label); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "label")
	}
	return nil
}

// DefaultPath returns the XDG config file path.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path. An empty path loads the default location
// and tolerates its absence.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return Config{}, errors.New(errors.ErrCodeFileNotFound, "config not found: %s", path)
			}
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
