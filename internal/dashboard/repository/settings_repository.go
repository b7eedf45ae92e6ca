package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/common"
)

// SettingsDefaults fill in fields that are missing, zero or empty in a persisted blob.
type SettingsDefaults struct {
	AutoRefresh entity.AutoRefreshConfig
	AutoTrade   entity.AutoTradeConfig
	Scraper     entity.ScraperConfig
}

// SettingsRepository reads and writes the persisted dashboard settings.
// Every getter reports found=false when the key has never been saved.
type SettingsRepository interface {
	GetAutoRefresh(ctx context.Context) (entity.AutoRefreshConfig, bool, error)
	SaveAutoRefresh(ctx context.Context, cfg entity.AutoRefreshConfig) error
	GetAutoTrade(ctx context.Context) (entity.AutoTradeConfig, bool, error)
	SaveAutoTrade(ctx context.Context, cfg entity.AutoTradeConfig) error
	GetScraper(ctx context.Context) (entity.ScraperConfig, bool, error)
	SaveScraper(ctx context.Context, cfg entity.ScraperConfig) error
	GetAlert(ctx context.Context, direction entity.AlertDirection) (entity.AlertThreshold, bool, error)
	SaveAlert(ctx context.Context, threshold entity.AlertThreshold) error
	DeleteAlert(ctx context.Context, direction entity.AlertDirection) error
	GetAlertMethods(ctx context.Context) ([]string, error)
	SaveAlertMethods(ctx context.Context, methods []string) error
}

// NewSettingsRepository creates a settings repository on top of store.
func NewSettingsRepository(store KVStore, defaults SettingsDefaults) SettingsRepository {
	return &settingsRepository{store: store, defaults: defaults}
}

type settingsRepository struct {
	store    KVStore
	defaults SettingsDefaults
}

func (r *settingsRepository) GetAutoRefresh(ctx context.Context) (entity.AutoRefreshConfig, bool, error) {
	cfg := r.defaults.AutoRefresh
	raw, ok, err := r.load(ctx, common.KeyAutoRefreshSettings)
	if err != nil || !ok {
		return cfg, false, err
	}

	cfg.Enabled = raw.Get("enabled").Bool()
	if v := raw.Get("interval").Int(); v != 0 {
		cfg.Interval = int(v)
	}
	if v := raw.Get("period").String(); v != "" {
		cfg.Period = entity.Period(v)
	}
	return cfg, true, nil
}

func (r *settingsRepository) SaveAutoRefresh(ctx context.Context, cfg entity.AutoRefreshConfig) error {
	return r.save(ctx, common.KeyAutoRefreshSettings, cfg)
}

func (r *settingsRepository) GetAutoTrade(ctx context.Context) (entity.AutoTradeConfig, bool, error) {
	cfg := r.defaults.AutoTrade
	raw, ok, err := r.load(ctx, common.KeyAutoTradeSettings)
	if err != nil || !ok {
		return cfg, false, err
	}

	cfg.Enabled = raw.Get("enabled").Bool()
	if v := raw.Get("strategy").String(); v != "" {
		cfg.Strategy = v
	}
	floatOr(raw, "tradeAmount", &cfg.TradeAmount)
	floatOr(raw, "maxPosition", &cfg.MaxPosition)
	floatOr(raw, "minChange", &cfg.MinChange)
	floatOr(raw, "minVolume", &cfg.MinVolume)
	return cfg, true, nil
}

func (r *settingsRepository) SaveAutoTrade(ctx context.Context, cfg entity.AutoTradeConfig) error {
	return r.save(ctx, common.KeyAutoTradeSettings, cfg)
}

func (r *settingsRepository) GetScraper(ctx context.Context) (entity.ScraperConfig, bool, error) {
	cfg := r.defaults.Scraper
	raw, ok, err := r.load(ctx, common.KeyScraperSettings)
	if err != nil || !ok {
		return cfg, false, err
	}

	if sources := raw.Get("sources"); sources.IsArray() {
		cfg.Sources = []string{}
		for _, s := range sources.Array() {
			cfg.Sources = append(cfg.Sources, s.String())
		}
	}
	if v := raw.Get("interval").Int(); v != 0 {
		cfg.Interval = int(v)
	}
	return cfg, true, nil
}

func (r *settingsRepository) SaveScraper(ctx context.Context, cfg entity.ScraperConfig) error {
	return r.save(ctx, common.KeyScraperSettings, cfg)
}

// GetAlert accepts either a bare number or a numeric string as the stored price.
func (r *settingsRepository) GetAlert(ctx context.Context, direction entity.AlertDirection) (entity.AlertThreshold, bool, error) {
	raw, ok, err := r.load(ctx, alertKey(direction))
	if err != nil || !ok {
		return entity.AlertThreshold{}, false, err
	}
	return entity.AlertThreshold{Direction: direction, Price: raw.Float()}, true, nil
}

func (r *settingsRepository) SaveAlert(ctx context.Context, threshold entity.AlertThreshold) error {
	return r.save(ctx, alertKey(threshold.Direction), threshold.Price)
}

func (r *settingsRepository) DeleteAlert(ctx context.Context, direction entity.AlertDirection) error {
	return r.store.Delete(ctx, alertKey(direction))
}

func (r *settingsRepository) GetAlertMethods(ctx context.Context) ([]string, error) {
	raw, ok, err := r.load(ctx, common.KeyAlertMethods)
	if err != nil || !ok {
		return nil, err
	}
	methods := []string{}
	for _, m := range raw.Array() {
		methods = append(methods, m.String())
	}
	return methods, nil
}

func (r *settingsRepository) SaveAlertMethods(ctx context.Context, methods []string) error {
	if methods == nil {
		methods = []string{}
	}
	return r.save(ctx, common.KeyAlertMethods, methods)
}

func (r *settingsRepository) load(ctx context.Context, key string) (gjson.Result, bool, error) {
	b, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return gjson.Result{}, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return gjson.Result{}, false, nil
	}
	if !gjson.ValidBytes(b) {
		return gjson.Result{}, false, fmt.Errorf("stored value for %s is not valid json", key)
	}
	return gjson.ParseBytes(b), true, nil
}

func (r *settingsRepository) save(ctx context.Context, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, b); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func alertKey(direction entity.AlertDirection) string {
	if direction == entity.AlertSellAbove {
		return common.KeySellAlert
	}
	return common.KeyBuyAlert
}

func floatOr(raw gjson.Result, path string, dst *float64) {
	if v := raw.Get(path).Float(); v != 0 {
		*dst = v
	}
}
