// Package cli implements the asciiviz command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/matzehuels/asciiviz/pkg/config"
	"github.com/matzehuels/asciiviz/pkg/errors"
	"github.com/matzehuels/asciiviz/pkg/viz"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "asciiviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the config file and applies the color preference.
// noColor forces plain output regardless of the file.
func (c *CLI) loadConfig(path string, noColor bool) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if noColor {
		cfg.NoColor = true
	}
	c.Config = cfg
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	c.Logger.Debug("Loaded config", "format", cfg.Format, "max_depth", cfg.MaxDepth, "no_color", cfg.NoColor)
	return nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// vizOpts holds the rendering flags shared by render and demo.
type vizOpts struct {
	label    string
	maxDepth int
}

// options merges flags over the config file. Flags win when set.
func (c *CLI) options(o vizOpts, labelSet, depthSet bool) (viz.Options, error) {
	opts := viz.Options{Label: c.Config.Label, MaxDepth: c.Config.MaxDepth}
	if labelSet {
		opts.Label = o.label
	}
	if depthSet {
		opts.MaxDepth = o.maxDepth
	}
	if err := errors.ValidateLabel(opts.Label); err != nil {
		return viz.Options{}, err
	}
	if opts.MaxDepth < 0 {
		return viz.Options{}, errors.New(errors.ErrCodeInvalidInput, "max depth must be >= 0, got %d", opts.MaxDepth)
	}
	return opts, nil
}

// parseType reports an unknown tag the way the dispatcher does: a logged
// diagnostic, not a command failure.
func (c *CLI) parseType(tag string) (viz.Type, bool) {
	t, err := viz.ParseType(tag)
	if err != nil {
		c.Logger.Error("Unknown visualization type", "type", tag)
		return "", false
	}
	return t, true
}
