package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"golang-stock-dashboard/internal/dashboard/analyzer"
	"golang-stock-dashboard/internal/dashboard/datasource"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// RefreshService builds the volume ranking and drives the auto-refresh timer.
type RefreshService interface {
	// Start restores the persisted auto-refresh settings and arms the timer when enabled.
	Start(ctx context.Context) error
	Stop()
	State() SchedulerState
	Refresh(ctx context.Context, period entity.Period) ([]entity.RankingRow, error)
	Latest(ctx context.Context, period entity.Period) ([]entity.RankingRow, error)
	Analyze(ctx context.Context, code string, sample entity.Sample, basePrice float64) (entity.Symbol, entity.Analysis, error)
	Settings(ctx context.Context) (entity.AutoRefreshConfig, error)
	UpdateSettings(ctx context.Context, cfg entity.AutoRefreshConfig) (entity.AutoRefreshConfig, error)
}

// NewRefreshService creates the ranking service.
func NewRefreshService(
	source datasource.Source,
	market MarketService,
	settings repository.SettingsRepository,
	notifications NotificationService,
	log *logger.Logger,
	factory TickerFactory,
) RefreshService {
	s := &refreshService{
		source:        source,
		market:        market,
		settings:      settings,
		notifications: notifications,
		logger:        log,
		snapshots:     cache.New(cache.NoExpiration, 0),
		baseCtx:       context.Background(),
	}
	s.scheduler = NewScheduler("auto-refresh", s.tick, log, factory)
	return s
}

type refreshService struct {
	source        datasource.Source
	market        MarketService
	settings      repository.SettingsRepository
	notifications NotificationService
	logger        *logger.Logger
	scheduler     *Scheduler
	snapshots     *cache.Cache

	mu      sync.Mutex
	baseCtx context.Context
	period  entity.Period
}

func (s *refreshService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()

	cfg, found, err := s.settings.GetAutoRefresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore auto-refresh settings: %w", err)
	}
	if !found || !cfg.Enabled {
		s.logger.Info("Auto-refresh is disabled")
		return nil
	}
	if err := validateAutoRefresh(&cfg); err != nil {
		s.logger.Warn("Ignoring invalid persisted auto-refresh settings", logger.ErrorField(err))
		return nil
	}
	s.logger.Info("Restoring auto-refresh", logger.IntField("interval", cfg.Interval), logger.StringField("period", string(cfg.Period)))
	return s.arm(cfg)
}

func (s *refreshService) Stop() {
	s.scheduler.Stop()
}

func (s *refreshService) State() SchedulerState {
	return s.scheduler.State()
}

func (s *refreshService) tick(ctx context.Context) {
	s.mu.Lock()
	period := s.period
	s.mu.Unlock()

	if _, err := s.Refresh(ctx, period); err != nil {
		s.logger.ErrorContext(ctx, "Auto-refresh tick failed", logger.ErrorField(err))
	}
}

// Refresh draws a fresh sample for every universe symbol, classifies it and ranks the rows.
// The index cards move by one refresh step as a side effect.
func (s *refreshService) Refresh(ctx context.Context, period entity.Period) ([]entity.RankingRow, error) {
	if period == "" {
		period = entity.PeriodDay
	}

	symbols := datasource.Universe()
	rows := make([]entity.RankingRow, 0, len(symbols))
	for i, symbol := range symbols {
		sample, err := s.source.FetchSample(ctx, symbol.Code, period)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch sample for %s: %w", symbol.Code, err)
		}
		rows = append(rows, entity.RankingRow{
			Rank:     i + 1,
			Symbol:   symbol,
			Sample:   sample,
			Amount:   Turnover(sample.Volume, sample.Price),
			Analysis: analyzer.Analyze(symbol, sample),
		})
	}

	s.snapshots.Set(string(period), rows, cache.NoExpiration)
	s.market.Nudge()

	s.logger.DebugContext(ctx, "Ranking refreshed", logger.StringField("period", string(period)), logger.IntField("rows", len(rows)))
	return copyRows(rows), nil
}

func (s *refreshService) Latest(ctx context.Context, period entity.Period) ([]entity.RankingRow, error) {
	if period == "" {
		period = entity.PeriodDay
	}
	if v, ok := s.snapshots.Get(string(period)); ok {
		return copyRows(v.([]entity.RankingRow)), nil
	}
	return s.Refresh(ctx, period)
}

// Analyze classifies a caller supplied sample. Universe codes use their reference metadata;
// other codes need a positive basePrice.
func (s *refreshService) Analyze(_ context.Context, code string, sample entity.Sample, basePrice float64) (entity.Symbol, entity.Analysis, error) {
	period, err := entity.ParsePeriod(string(sample.Period))
	if err != nil {
		return entity.Symbol{}, entity.Analysis{}, err
	}
	sample.Period = period

	symbol, ok := datasource.Lookup(code)
	if !ok {
		if basePrice <= 0 {
			return entity.Symbol{}, entity.Analysis{}, &entity.ValidationError{
				Field:   "base_price",
				Message: fmt.Sprintf("stock %s is not in the reference universe, a positive base price is required", code),
			}
		}
		symbol = entity.Symbol{Code: code, BasePrice: basePrice}
	}
	return symbol, analyzer.Analyze(symbol, sample), nil
}

func (s *refreshService) Settings(ctx context.Context) (entity.AutoRefreshConfig, error) {
	cfg, _, err := s.settings.GetAutoRefresh(ctx)
	return cfg, err
}

// UpdateSettings validates and persists cfg, then restarts or stops the timer to match it.
func (s *refreshService) UpdateSettings(ctx context.Context, cfg entity.AutoRefreshConfig) (entity.AutoRefreshConfig, error) {
	if err := validateAutoRefresh(&cfg); err != nil {
		return cfg, err
	}
	if err := s.settings.SaveAutoRefresh(ctx, cfg); err != nil {
		return cfg, err
	}

	if !cfg.Enabled {
		s.scheduler.Stop()
		s.notifications.Notify(ctx, "Auto refresh disabled", "Ranking data will no longer refresh automatically")
		return cfg, nil
	}

	if err := s.arm(cfg); err != nil {
		return cfg, err
	}
	s.notifications.Notify(ctx, "Auto refresh enabled", fmt.Sprintf("Ranking data will refresh every %d seconds", cfg.Interval))
	return cfg, nil
}

func (s *refreshService) arm(cfg entity.AutoRefreshConfig) error {
	s.mu.Lock()
	s.period = cfg.Period
	base := s.baseCtx
	s.mu.Unlock()
	return s.scheduler.Start(base, time.Duration(cfg.Interval)*time.Second)
}

func validateAutoRefresh(cfg *entity.AutoRefreshConfig) error {
	if cfg.Interval < 1 {
		return &entity.ValidationError{Field: "interval", Message: "must be at least 1 second"}
	}
	period, err := entity.ParsePeriod(string(cfg.Period))
	if err != nil {
		return err
	}
	cfg.Period = period
	return nil
}

// Turnover converts volume in ten-thousand-share lots at price into hundred-million yuan, rounded to 2 places.
func Turnover(volume, price float64) float64 {
	amount, _ := decimal.NewFromFloat(volume).
		Mul(decimal.NewFromInt(10000)).
		Mul(decimal.NewFromFloat(price)).
		Div(decimal.NewFromInt(100000000)).
		Round(2).
		Float64()
	return amount
}

func copyRows(rows []entity.RankingRow) []entity.RankingRow {
	out := make([]entity.RankingRow, len(rows))
	copy(out, rows)
	return out
}
