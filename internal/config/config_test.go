package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 4, cfg.Seasons.RookieYears)
	assert.Equal(t, 0.07, cfg.Pricing.FrictionPremium)
	assert.Equal(t, 1.10, cfg.Pricing.ApronMarkup)
	assert.Equal(t, 2016, cfg.Seasons.DraftStart)
	assert.Equal(t, 2020, cfg.Seasons.DraftEnd)
}

func TestOverlayFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pickarb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pricing:
  friction_premium: 0.05
seasons:
  draft_end: 2021
`), 0644))

	cfg := Default()
	require.NoError(t, overlayFromFile(&cfg, path))

	// Overridden fields change, everything else keeps the default.
	assert.Equal(t, 0.05, cfg.Pricing.FrictionPremium)
	assert.Equal(t, 2021, cfg.Seasons.DraftEnd)
	assert.Equal(t, 1.10, cfg.Pricing.ApronMarkup)
	assert.Equal(t, 2016, cfg.Seasons.DraftStart)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative friction premium", func(c *Config) { c.Pricing.FrictionPremium = -0.1 }},
		{"friction premium at one", func(c *Config) { c.Pricing.FrictionPremium = 1.0 }},
		{"apron markup below one", func(c *Config) { c.Pricing.ApronMarkup = 0.9 }},
		{"zero rookie years", func(c *Config) { c.Seasons.RookieYears = 0 }},
		{"inverted draft window", func(c *Config) { c.Seasons.DraftStart = 2021; c.Seasons.DraftEnd = 2020 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"missing input file", func(c *Config) { c.Inputs.SalaryCSV = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPathsFor(t *testing.T) {
	root := t.TempDir()
	paths := PathsFor(root)

	assert.Equal(t, filepath.Join(root, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(root, "tables"), paths.TablesDir)
	assert.Equal(t, filepath.Join(root, "data", "salary_market_raw.csv"), paths.MarketRawCSV)
	assert.Equal(t, filepath.Join(root, "tables", "table_scenario_thin.csv"), paths.ScenarioTableCSV("thin"))
	assert.Equal(t, filepath.Join(root, "tables", "table_scenario_apron_formatted.csv"), paths.ScenarioFormattedCSV("apron"))
}

func TestGetInputPath(t *testing.T) {
	paths := PathsFor(t.TempDir())

	assert.Equal(t, filepath.Join(paths.DataDir, "player_salary.csv"), paths.GetInputPath("player_salary.csv"))
	abs := filepath.Join(string(filepath.Separator), "elsewhere", "x.csv")
	assert.Equal(t, abs, paths.GetInputPath(abs))
}

func TestEnsureDirectories(t *testing.T) {
	paths := PathsFor(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.TablesDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
