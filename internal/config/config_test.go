package config

import (
	"os"
	"path/filepath"
	"testing"

	explorerErrors "bikeshare/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPageSize, cfg.PageSize)
	assert.Equal(t, defaultSeparatorWidth, cfg.SeparatorWidth)
	assert.Equal(t, "washington.csv", cfg.Cities["washington"])
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data_dir: /srv/bikeshare
page_size: 10
cities:
  chicago: chicago.csv
  new york city: nyc.csv
  washington: /tmp/dc.csv
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, defaultSeparatorWidth, cfg.SeparatorWidth)

	nyc, err := cfg.CityFilepath("new york city")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/bikeshare", "nyc.csv"), nyc)

	dc, err := cfg.CityFilepath("washington")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dc.csv", dc)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "invalid: yaml: content: [[[")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidPageSize(t *testing.T) {
	path := writeConfig(t, "page_size: -1\n")

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, explorerErrors.ErrInvalidConfig)
}

func TestValidate_UnknownCity(t *testing.T) {
	cfg := Default()
	cfg.Cities["toronto"] = "toronto.csv"

	assert.ErrorIs(t, cfg.Validate(), explorerErrors.ErrUnknownCity)
}

func TestCityFilepath_UnknownCity(t *testing.T) {
	_, err := Default().CityFilepath("montreal")
	assert.ErrorIs(t, err, explorerErrors.ErrUnknownCity)
}
