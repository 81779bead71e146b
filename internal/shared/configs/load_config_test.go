package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `log:
  level: debug
doc_store:
  root_dir: ./data
processing:
  countries: [se, "no", dk]
  window_days: 90
  workers: 4
  country_timeout_seconds: 120
  calendar_rolling: false
  write_audit: true
server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
trending:
  top_k: 10
  lookback_days: 30
  countries:
    se:
      list_page: loppkalender
      content_path: loppsidor
    "no":
      list_page: terminliste
      content_path: lopssider
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	cfg, err := LoadConfig(writeTempConfig(t, validConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.DocStore.RootDir)
	assert.Equal(t, []string{"se", "no", "dk"}, cfg.Processing.Countries)
	assert.Equal(t, 90, cfg.Processing.WindowDays)
	assert.Equal(t, 4, cfg.Processing.Workers)
	assert.Equal(t, 120, cfg.Processing.CountryTimeoutSeconds)
	assert.False(t, cfg.Processing.CalendarRolling)
	assert.True(t, cfg.Processing.WriteAudit)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Trending.TopK)
	assert.Equal(t, 30, cfg.Trending.LookbackDays)
	assert.Equal(t, "loppkalender", cfg.Trending.Countries["se"].ListPage)
	assert.Equal(t, "lopssider", cfg.Trending.Countries["no"].ContentPath)
}

func TestLoadConfig_MissingCountries(t *testing.T) {
	invalidConfig := `log:
  level: debug
doc_store:
  root_dir: ./data
processing:
  window_days: 90
  workers: 4
  country_timeout_seconds: 120
server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
trending:
  top_k: 10
  lookback_days: 30
  countries:
    se:
      list_page: loppkalender
      content_path: loppsidor
`

	_, err := LoadConfig(writeTempConfig(t, invalidConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "processing.countries")
}

func TestLoadConfig_UppercaseCountryRejected(t *testing.T) {
	invalidConfig := `log:
  level: debug
doc_store:
  root_dir: ./data
processing:
  countries: [SE]
  window_days: 90
  workers: 4
  country_timeout_seconds: 120
server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
trending:
  top_k: 10
  lookback_days: 30
  countries:
    se:
      list_page: loppkalender
      content_path: loppsidor
`

	_, err := LoadConfig(writeTempConfig(t, invalidConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeTempConfig(t, "log: [unclosed"))
	require.Error(t, err)
}
