// Package config loads the site configuration: a YAML file, .env files,
// environment overrides and command-line overrides, normalized, defaulted and
// validated before any file I/O happens.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/pricing"
	"git.home.luguber.info/inful/sitegen/internal/sitemode"
	"git.home.luguber.info/inful/sitegen/internal/urls"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "site.yaml"

// CurrentVersion is the configuration schema version.
const CurrentVersion = "1.0"

// Config is the complete site configuration.
type Config struct {
	Version string        `yaml:"version"`
	Site    SiteConfig    `yaml:"site"`
	Input   InputConfig   `yaml:"input"`
	Pricing PricingConfig `yaml:"pricing"`
	Output  OutputConfig  `yaml:"output"`
	Assets  AssetsConfig  `yaml:"assets"`
	Pages   PagesConfig   `yaml:"pages"`
	Logging LoggingConfig `yaml:"logging"`
	Copy    content.Copy  `yaml:"copy"`

	// BaseDir anchors relative paths: the config file's directory, or the
	// working directory when no file was read.
	BaseDir string `yaml:"-"`

	mode sitemode.Mode
}

// SiteConfig is the site identity and URL topology.
type SiteConfig struct {
	Brand string `yaml:"brand"`
	// Origin is the absolute site origin (https://example.com). Derived from
	// the brand when empty.
	Origin string `yaml:"origin"`
	// SubdomainBase overrides the host city labels are prefixed to.
	SubdomainBase string `yaml:"subdomain_base"`
	Mode          string `yaml:"mode"`
}

// InputConfig locates the city records.
type InputConfig struct {
	// Cities is a CSV file, or a SQLite database (.db, .sqlite, .sqlite3)
	// with a "cities" table.
	Cities string `yaml:"cities"`
}

// PricingConfig is the nationwide base price range in whole dollars.
type PricingConfig struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

// OutputConfig controls where the build writes.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	// RoutesFile receives host-routing rules in subdomain mode.
	RoutesFile string `yaml:"routes_file"`
	// ReportFile receives the JSON build report. Defaults to
	// build-report.json next to the output directory.
	ReportFile string `yaml:"report_file"`
}

// AssetsConfig lists static files copied into the build root.
type AssetsConfig struct {
	Directory string   `yaml:"directory"`
	Image     string   `yaml:"image"`
	Favicons  []string `yaml:"favicons"`
}

// PagesConfig tunes page rendering.
type PagesConfig struct {
	TitleMaxRunes int `yaml:"title_max_runes"`
}

// LoggingConfig selects log level and format.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Overrides are command-line values that take precedence over the file and
// the environment. Empty fields are ignored.
type Overrides struct {
	Mode          string
	Origin        string
	SubdomainBase string
	Cities        string
	OutputDir     string
}

// Load reads path (skipped when empty), applies environment and command-line
// overrides, then normalizes, defaults and validates the result.
func Load(path string, o Overrides) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return nil, errors.ConfigError("configuration file not found").WithContext("file", path).Build()
			}
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
				Fatal().WithContext("file", path).Build()
		}
		if err := yaml.Unmarshal([]byte(expandEnv(string(data))), cfg); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config file").
				Fatal().WithContext("file", path).Build()
		}
		abs, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "resolve config directory").Fatal().Build()
		}
		cfg.BaseDir = abs
	}
	if cfg.BaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "resolve working directory").Fatal().Build()
		}
		cfg.BaseDir = wd
	}

	applyEnv(cfg)
	if err := cfg.apply(o); err != nil {
		return nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize normalizes, defaults and validates the configuration.
func (c *Config) Finalize() error {
	normalize(c)
	applyDefaults(c)
	return validate(c)
}

func (c *Config) apply(o Overrides) error {
	if o.Mode != "" {
		c.Site.Mode = o.Mode
	}
	if o.Origin != "" {
		c.Site.Origin = o.Origin
	}
	if o.SubdomainBase != "" {
		c.Site.SubdomainBase = o.SubdomainBase
	}
	// Command-line paths are relative to the working directory.
	for _, p := range []struct {
		src string
		dst *string
	}{{o.Cities, &c.Input.Cities}, {o.OutputDir, &c.Output.Directory}} {
		if p.src == "" {
			continue
		}
		abs, err := filepath.Abs(p.src)
		if err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "resolve path").Fatal().WithContext("path", p.src).Build()
		}
		*p.dst = abs
	}
	return nil
}

// Mode returns the validated site mode.
func (c *Config) Mode() sitemode.Mode { return c.mode }

// BaseRange returns the validated base price range.
func (c *Config) BaseRange() pricing.Range {
	return pricing.Range{Low: c.Pricing.Low, High: c.Pricing.High}
}

// Path resolves p against BaseDir.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// AssetFiles returns the image and favicon file names, image first.
func (c *Config) AssetFiles() []string {
	out := make([]string, 0, len(c.Assets.Favicons)+1)
	if c.Assets.Image != "" {
		out = append(out, c.Assets.Image)
	}
	return append(out, c.Assets.Favicons...)
}

// Resolver returns the URL resolver configuration. Guide page slugs derive
// from the guide titles.
func (c *Config) Resolver() urls.Config {
	return urls.Config{
		Mode:          c.mode,
		Origin:        c.Site.Origin,
		SubdomainBase: c.Site.SubdomainBase,
		CostSlug:      c.Copy.CostTitle,
		HowToSlug:     c.Copy.HowToTitle,
	}
}
