package main

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

// Global is shared with every command.
type Global struct {
	Ctx context.Context
	Out io.Writer
}

// CLI is the command tree and its global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"site.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build  BuildCmd  `cmd:"" help:"Build the site into the output directory"`
	Plan   PlanCmd   `cmd:"" help:"Print the pages a build would write, without writing anything"`
	Verify VerifyCmd `cmd:"" help:"Check an existing output directory against the configuration"`
	Init   InitCmd   `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; sets up logging until the
// configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, config.LogFormatText))
	return nil
}

// SiteFlags override configuration values for a single run.
type SiteFlags struct {
	Mode          string `arg:"" optional:"" help:"Site mode: regular, cost, state, subdomain or regular_city_only. Overrides the configuration."`
	Origin        string `help:"Absolute site origin, e.g. https://example.com. Overrides SITE_ORIGIN and the configuration."`
	SubdomainBase string `name:"subdomain-base" help:"Base domain for city hosts in subdomain mode. Overrides SUBDOMAIN_BASE and the configuration."`
	Cities        string `help:"City input file (CSV, or SQLite with a cities table)."`
	Output        string `short:"o" help:"Output directory."`
}

func (f SiteFlags) overrides() config.Overrides {
	return config.Overrides{
		Mode:          f.Mode,
		Origin:        f.Origin,
		SubdomainBase: f.SubdomainBase,
		Cities:        f.Cities,
		OutputDir:     f.Output,
	}
}

// configPath returns the file to load. A missing default file means built-in
// defaults; an explicitly named file must exist.
func (c *CLI) configPath() string {
	if c.Config != config.DefaultPath {
		return c.Config
	}
	if _, err := os.Stat(c.Config); stderrors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return c.Config
}

// loadConfig loads the configuration and switches logging to its settings.
func loadConfig(root *CLI, f SiteFlags) (*config.Config, error) {
	cfg, err := config.Load(root.configPath(), f.overrides())
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level.SlogLevel()
	if root.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, cfg.Logging.Format))
	return cfg, nil
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
