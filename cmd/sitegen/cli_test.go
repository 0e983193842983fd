package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

// initSite runs 'init' in a temp directory and adds a city file plus every
// default asset next to the generated configuration.
func initSite(t *testing.T) string {
	t.Helper()
	t.Setenv(config.EnvOrigin, "")
	t.Setenv(config.EnvSubdomainBase, "")
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "site.yaml")

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"-c", cfgPath, "init"}, &out))
	assert.Contains(t, out.String(), "Initialized successfully")
	require.FileExists(t, cfgPath)

	csv := "city,state,col\nAustin,TX,1.1\nDallas,TX,0.9\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cities.csv"), []byte(csv), 0o600))
	for _, name := range append([]string{config.DefaultImage}, config.DefaultFavicons...) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o600))
	}
	return cfgPath
}

func TestInitRefusesOverwrite(t *testing.T) {
	cfgPath := initSite(t)
	var out bytes.Buffer
	assert.Equal(t, 7, run([]string{"-c", cfgPath, "init"}, &out))
	assert.Equal(t, 0, run([]string{"-c", cfgPath, "init", "--force"}, &out))
}

func TestPlanPrintsPages(t *testing.T) {
	cfgPath := initSite(t)
	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"-c", cfgPath, "plan"}, &out))

	text := out.String()
	assert.Contains(t, text, "austin-tx/index.html")
	assert.Contains(t, text, "https://emergencymaintenanceexperts.com/austin-tx/")
	assert.Contains(t, text, "$88–$275")
	assert.Contains(t, text, "sitemap / -> https://emergencymaintenanceexperts.com/sitemap.xml")
	assert.NoDirExists(t, filepath.Join(filepath.Dir(cfgPath), "public"))
}

func TestPlanSinglePage(t *testing.T) {
	cfgPath := initSite(t)
	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"-c", cfgPath, "plan", "--page", "/austin-tx/index.html"}, &out))

	text := out.String()
	assert.Contains(t, text, "canonical:  https://emergencymaintenanceexperts.com/austin-tx/")
	assert.Contains(t, text, "multiplier: 1.1")
	assert.Contains(t, text, "price:      $88–$275")
	assert.NotContains(t, text, "dallas")

	out.Reset()
	assert.Equal(t, 4, run([]string{"-c", cfgPath, "plan", "--page", "houston-tx/index.html"}, &out))
}

func TestPlanModeArgument(t *testing.T) {
	cfgPath := initSite(t)
	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"-c", cfgPath, "plan", "state"}, &out))
	assert.Contains(t, out.String(), "tx/austin/index.html")
}

func TestBuildThenVerify(t *testing.T) {
	cfgPath := initSite(t)
	dir := filepath.Dir(cfgPath)
	metricsFile := filepath.Join(dir, "metrics.prom")

	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"-c", cfgPath, "build", "--metrics-file", metricsFile}, &out))
	assert.FileExists(t, filepath.Join(dir, "public", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "public", "austin-tx", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "build-report.json"))

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sitegen_build_outcomes_total")

	out.Reset()
	require.Equal(t, 0, run([]string{"-c", cfgPath, "verify"}, &out))
	assert.Contains(t, out.String(), "0 issues")

	require.NoError(t, os.RemoveAll(filepath.Join(dir, "public", "dallas-tx")))
	out.Reset()
	assert.Equal(t, 2, run([]string{"-c", cfgPath, "verify"}, &out))
	assert.Contains(t, out.String(), "dallas-tx")
}

func TestBuildOutputOverride(t *testing.T) {
	cfgPath := initSite(t)
	target := filepath.Join(t.TempDir(), "site")
	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"-c", cfgPath, "build", "-o", target, "cost"}, &out))
	assert.FileExists(t, filepath.Join(target, "cost", "austin-tx", "index.html"))
}

func TestBuildExitCodes(t *testing.T) {
	cfgPath := initSite(t)
	var out bytes.Buffer

	assert.Equal(t, 7, run([]string{"-c", cfgPath, "build", "--cities", filepath.Join(t.TempDir(), "missing.csv")}, &out))
	assert.Equal(t, 7, run([]string{"-c", cfgPath, "build", "bogus"}, &out))
	assert.Equal(t, 7, run([]string{"-c", filepath.Join(t.TempDir(), "absent.yaml"), "build"}, &out))
}
