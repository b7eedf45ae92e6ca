package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/common"
)

var testDefaults = SettingsDefaults{
	AutoRefresh: entity.AutoRefreshConfig{Interval: 5, Period: entity.PeriodDay},
	AutoTrade: entity.AutoTradeConfig{
		Strategy: "volume-breakout", TradeAmount: 10, MaxPosition: 30, MinChange: 2, MinVolume: 100,
	},
	Scraper: entity.ScraperConfig{Sources: []string{}, Interval: 5},
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`{"a":1}`)
	require.NoError(t, store.Set(ctx, "k", value))
	value[2] = 'x'

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
	require.NoError(t, store.Delete(ctx, "k"))
}

func TestSettingsAutoRefreshDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewSettingsRepository(store, testDefaults)

	cfg, found, err := repo.GetAutoRefresh(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, testDefaults.AutoRefresh, cfg)

	require.NoError(t, store.Set(ctx, common.KeyAutoRefreshSettings, []byte(`{"enabled":true,"interval":0}`)))
	cfg, found, err = repo.GetAutoRefresh(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5, cfg.Interval)
	assert.Equal(t, entity.PeriodDay, cfg.Period)

	want := entity.AutoRefreshConfig{Enabled: false, Interval: 12, Period: entity.PeriodMonth}
	require.NoError(t, repo.SaveAutoRefresh(ctx, want))
	cfg, _, err = repo.GetAutoRefresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
}

func TestSettingsAutoTradeFalsyFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewSettingsRepository(store, testDefaults)

	require.NoError(t, store.Set(ctx, common.KeyAutoTradeSettings,
		[]byte(`{"enabled":true,"strategy":"","tradeAmount":25,"maxPosition":0,"minChange":"3.5"}`)))

	cfg, found, err := repo.GetAutoTrade(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entity.AutoTradeConfig{
		Enabled: true, Strategy: "volume-breakout", TradeAmount: 25, MaxPosition: 30, MinChange: 3.5, MinVolume: 100,
	}, cfg)
}

func TestSettingsScraper(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(NewMemoryStore(), testDefaults)

	cfg, found, err := repo.GetScraper(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, cfg.Sources)

	require.NoError(t, repo.SaveScraper(ctx, entity.ScraperConfig{Sources: []string{"sina", "ifeng"}, Interval: 15}))
	cfg, found, err = repo.GetScraper(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"sina", "ifeng"}, cfg.Sources)
	assert.Equal(t, 15, cfg.Interval)
}

func TestSettingsAlerts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewSettingsRepository(store, testDefaults)

	_, found, err := repo.GetAlert(ctx, entity.AlertBuyBelow)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SaveAlert(ctx, entity.AlertThreshold{Direction: entity.AlertBuyBelow, Price: 3200}))
	require.NoError(t, store.Set(ctx, common.KeySellAlert, []byte(`"3350.5"`)))

	buy, found, err := repo.GetAlert(ctx, entity.AlertBuyBelow)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3200.0, buy.Price)

	sell, found, err := repo.GetAlert(ctx, entity.AlertSellAbove)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entity.AlertSellAbove, sell.Direction)
	assert.Equal(t, 3350.5, sell.Price)

	require.NoError(t, repo.DeleteAlert(ctx, entity.AlertBuyBelow))
	_, found, _ = repo.GetAlert(ctx, entity.AlertBuyBelow)
	assert.False(t, found)

	methods, err := repo.GetAlertMethods(ctx)
	require.NoError(t, err)
	assert.Nil(t, methods)

	require.NoError(t, repo.SaveAlertMethods(ctx, []string{common.AlertMethodTelegram}))
	methods, err = repo.GetAlertMethods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{common.AlertMethodTelegram}, methods)
}

func TestSettingsInvalidJSON(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewSettingsRepository(store, testDefaults)

	require.NoError(t, store.Set(ctx, common.KeyAutoTradeSettings, []byte(`{broken`)))
	_, _, err := repo.GetAutoTrade(ctx)
	assert.Error(t, err)
}

func TestWatchlistRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWatchlistRepository(NewMemoryStore())

	entries, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, entries)

	require.NoError(t, repo.Save(ctx, nil))
	entries, found, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, entries)

	added := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	want := []entity.WatchlistEntry{
		{Symbol: entity.Symbol{Name: "A", Code: "1"}, LastSample: entity.Sample{Price: 10, Period: entity.PeriodDay}, AddedAt: added},
		{Symbol: entity.Symbol{Name: "B", Code: "2"}, LastSample: entity.Sample{Price: 20, Period: entity.PeriodDay}, AddedAt: added},
	}
	require.NoError(t, repo.Save(ctx, want))
	entries, _, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, entries)
}
