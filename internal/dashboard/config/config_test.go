package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "dashboard:", cfg.Store.KeyPrefix)
	assert.Equal(t, 5*time.Second, cfg.Dashboard.MarketTickInterval)
	assert.Equal(t, 10*time.Second, cfg.Dashboard.AlertCheckInterval)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.AutoTradeInterval)
	assert.Equal(t, 5, cfg.Dashboard.DefaultRefreshInterval)
	assert.Equal(t, "000001", cfg.Dashboard.ReferenceIndexCode)
	assert.Equal(t, 50, cfg.Dashboard.NotificationHistory)
	assert.NotZero(t, cfg.Dashboard.RandomSeed)
	assert.Len(t, cfg.Scraper.Sources, 4)
	assert.Equal(t, 5, cfg.Scraper.DefaultInterval)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  name: test-dashboard
store:
  driver: redis
dashboard:
  alert_check_interval: 2s
  random_seed: 99
scraper:
  sources:
    - key: sina
      name: Sina
      kind: rss
      url: http://example.invalid/rss
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-dashboard", cfg.App.Name)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, 2*time.Second, cfg.Dashboard.AlertCheckInterval)
	assert.Equal(t, int64(99), cfg.Dashboard.RandomSeed)
	require.Len(t, cfg.Scraper.Sources, 1)
	assert.Equal(t, "rss", cfg.Scraper.Sources[0].Kind)
	assert.Equal(t, 5*time.Second, cfg.Dashboard.MarketTickInterval)
}
