package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/content"
	"git.home.luguber.info/inful/sitegen/internal/foundation/errors"
	"git.home.luguber.info/inful/sitegen/internal/sitemode"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvOrigin, "")
	t.Setenv(EnvSubdomainBase, "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "version: \"1.0\"\n")

	cfg, err := Load(path, Overrides{})
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, DefaultBrand, cfg.Site.Brand)
	assert.Equal(t, "https://emergencymaintenanceexperts.com", cfg.Site.Origin)
	assert.Equal(t, sitemode.Regular, cfg.Mode())
	assert.Equal(t, 80, cfg.BaseRange().Low)
	assert.Equal(t, 250, cfg.BaseRange().High)
	assert.Equal(t, filepath.Join(dir, "cities.csv"), cfg.Input.Cities)
	assert.Equal(t, filepath.Join(dir, "public"), cfg.Output.Directory)
	assert.Equal(t, filepath.Join(dir, "vercel.json"), cfg.Output.RoutesFile)
	assert.Equal(t, filepath.Join(dir, "build-report.json"), cfg.Output.ReportFile)
	assert.Equal(t, dir, cfg.Assets.Directory)
	assert.Equal(t, 70, cfg.Pages.TitleMaxRunes)
	assert.Len(t, cfg.Assets.Favicons, 5)
	assert.Equal(t, DefaultImage, cfg.AssetFiles()[0])
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, "Emergency Maintenance Cost", cfg.Copy.CostTitle)

	rc := cfg.Resolver()
	assert.Equal(t, sitemode.Regular, rc.Mode)
	assert.Equal(t, cfg.Copy.HowToTitle, rc.HowToSlug)
}

func TestLoadFileValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_SITE_BRAND", "Acme Plumbing")
	path := writeConfig(t, `version: "1.0"
site:
  brand: ${TEST_SITE_BRAND}
  origin: https://Example.com/
  mode: " State "
pricing:
  low: 100
  high: 300
output:
  directory: /srv/site
logging:
  level: WARNING
  format: json
copy:
  cost_title: Plumbing Cost
`)
	cfg, err := Load(path, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, "Acme Plumbing", cfg.Site.Brand)
	assert.Equal(t, "https://example.com", cfg.Site.Origin)
	assert.Equal(t, sitemode.State, cfg.Mode())
	assert.Equal(t, 100, cfg.BaseRange().Low)
	assert.Equal(t, "/srv/site", cfg.Output.Directory)
	assert.Equal(t, "/srv/build-report.json", cfg.Output.ReportFile)
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.Equal(t, "Plumbing Cost", cfg.Copy.CostTitle)
	assert.NotEmpty(t, cfg.Copy.HowToTitle)
}

func TestLoadOverridePrecedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `version: "1.0"
site:
  origin: https://file.example
  subdomain_base: file.example
`)

	t.Setenv(EnvOrigin, "https://env.example")
	t.Setenv(EnvSubdomainBase, "env.example")
	cfg, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.Site.Origin)
	assert.Equal(t, "env.example", cfg.Site.SubdomainBase)

	cfg, err = Load(path, Overrides{
		Mode:          "subdomain",
		Origin:        "https://flag.example",
		SubdomainBase: "Flag.Example.",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example", cfg.Site.Origin)
	assert.Equal(t, "flag.example", cfg.Site.SubdomainBase)
	assert.Equal(t, sitemode.Subdomain, cfg.Mode())
}

func TestLoadWithoutFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", Overrides{Cities: "in.csv"})
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.BaseDir)
	assert.Equal(t, filepath.Join(wd, "in.csv"), cfg.Input.Cities)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name     string
		body     string
		o        Overrides
		category errors.ErrorCategory
	}{
		{"bad yaml", "site: [", Overrides{}, errors.CategoryConfig},
		{"bad version", "version: \"9\"\n", Overrides{}, errors.CategoryConfig},
		{"bad mode", "version: \"1.0\"\nsite:\n  mode: bogus\n", Overrides{}, errors.CategoryConfig},
		{"bad mode flag", "version: \"1.0\"\n", Overrides{Mode: "bogus"}, errors.CategoryConfig},
		{"relative origin", "version: \"1.0\"\nsite:\n  origin: example.com\n", Overrides{}, errors.CategoryConfig},
		{"origin with path", "version: \"1.0\"\nsite:\n  origin: https://example.com/x\n", Overrides{}, errors.CategoryConfig},
		{"negative price", "version: \"1.0\"\npricing:\n  low: -1\n  high: 10\n", Overrides{}, errors.CategoryConfig},
		{"low above high", "version: \"1.0\"\npricing:\n  low: 300\n  high: 10\n", Overrides{}, errors.CategoryConfig},
		{"title clamp", "version: \"1.0\"\npages:\n  title_max_runes: 1\n", Overrides{}, errors.CategoryConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), tt.o)
			require.Error(t, err)
			assert.Equal(t, tt.category, errors.GetCategory(err))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), Overrides{})
	require.Error(t, err)
	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryConfig, ce.Category())
	file, _ := ce.Context().GetString("file")
	assert.Contains(t, file, "nope.yaml")
}

func TestOriginFromBrand(t *testing.T) {
	assert.Equal(t, "https://emergencymaintenanceexperts.com", OriginFromBrand("Emergency Maintenance Experts"))
	assert.Equal(t, "https://ab1.com", OriginFromBrand("A&B 1!"))
	assert.Empty(t, OriginFromBrand("  "))
}

func TestInit(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, Init(path, false))

	err := Init(path, false)
	require.Error(t, err)
	assert.Equal(t, errors.CategoryConfig, errors.GetCategory(err))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "https://emergencymaintenanceexperts.com", cfg.Site.Origin)
	assert.Equal(t, sitemode.Regular, cfg.Mode())
	assert.Equal(t, "Emergency Maintenance Cost", cfg.Copy.CostTitle)
	assert.Equal(t, content.DefaultCopy().CostBody, cfg.Copy.CostBody)
}

func TestLogLevels(t *testing.T) {
	assert.Equal(t, LogLevelDebug, NormalizeLogLevel(" DEBUG "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("verbose"))
	assert.Equal(t, LogFormatText, NormalizeLogFormat("xml"))
	assert.Equal(t, "WARN", LogLevelWarn.SlogLevel().String())
}

func TestExpandEnvKeepsDollarAmounts(t *testing.T) {
	t.Setenv("TEST_SITE_NAME", "Acme")
	assert.Equal(t, "Acme costs $1,200 or $150 ($$)", expandEnv("${TEST_SITE_NAME} costs $1,200 or $150 ($$)"))
}
