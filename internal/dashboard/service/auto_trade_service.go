package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/dashboard/strategy"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/utils"
)

const maxTradeHistory = 100

// Position is a simulated holding opened by the auto-trade loop.
type Position struct {
	Symbol   entity.Symbol `json:"symbol"`
	Price    float64       `json:"price"`
	Amount   float64       `json:"amount"`
	OpenedAt time.Time     `json:"opened_at"`
}

// AutoTradeStatus summarizes the simulator for the dashboard.
type AutoTradeStatus struct {
	State       SchedulerState `json:"state"`
	NextRun     *time.Time     `json:"next_run,omitempty"`
	TodayTrades int            `json:"today_trades"`
	Exposure    float64        `json:"exposure"`
	Positions   []Position     `json:"positions"`
	LastTrade   *entity.Trade  `json:"last_trade,omitempty"`
}

// AutoTradeService simulates trades on the latest ranking. Nothing is sent to a broker.
type AutoTradeService interface {
	// Start arms the loop when the persisted settings are enabled.
	Start(ctx context.Context) error
	Stop()
	Settings(ctx context.Context) (entity.AutoTradeConfig, error)
	UpdateSettings(ctx context.Context, cfg entity.AutoTradeConfig) (entity.AutoTradeConfig, error)
	Enable(ctx context.Context) (entity.AutoTradeConfig, error)
	Disable(ctx context.Context) (entity.AutoTradeConfig, error)
	// RunOnce executes one cycle. It returns nil without error when nothing was traded.
	RunOnce(ctx context.Context) (*entity.Trade, error)
	Status() AutoTradeStatus
	Trades() []entity.Trade
	Strategies() []string
}

func NewAutoTradeService(
	ranking RefreshService,
	settings repository.SettingsRepository,
	strategies strategy.Registry,
	notifications NotificationService,
	interval time.Duration,
	log *logger.Logger,
) AutoTradeService {
	s := &autoTradeService{
		ranking:       ranking,
		settings:      settings,
		strategies:    strategies,
		notifications: notifications,
		interval:      interval,
		logger:        log,
		positions:     map[string]Position{},
		baseCtx:       context.Background(),
		now:           utils.TimeNowCST,
	}
	s.job = NewCronJob("auto-trade", s.tick, log)
	return s
}

type autoTradeService struct {
	ranking       RefreshService
	settings      repository.SettingsRepository
	strategies    strategy.Registry
	notifications NotificationService
	interval      time.Duration
	logger        *logger.Logger
	job           *CronJob
	now           func() time.Time

	mu          sync.Mutex
	baseCtx     context.Context
	positions   map[string]Position
	order       []string
	trades      []entity.Trade
	todayTrades int
	countDay    time.Time
}

func (s *autoTradeService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()

	cfg, found, err := s.settings.GetAutoTrade(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore auto-trade settings: %w", err)
	}
	if !found || !cfg.Enabled {
		s.logger.Info("Auto-trade is disabled")
		return nil
	}
	s.logger.Info("Restoring auto-trade", logger.StringField("strategy", cfg.Strategy))
	return s.arm()
}

func (s *autoTradeService) Stop() {
	s.job.Stop()
}

func (s *autoTradeService) arm() error {
	s.mu.Lock()
	base := s.baseCtx
	s.mu.Unlock()
	return s.job.Start(base, EverySpec(s.interval))
}

func (s *autoTradeService) tick(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Auto-trade run failed", logger.ErrorField(err))
	}
}

func (s *autoTradeService) Settings(ctx context.Context) (entity.AutoTradeConfig, error) {
	cfg, _, err := s.settings.GetAutoTrade(ctx)
	return cfg, err
}

func (s *autoTradeService) UpdateSettings(ctx context.Context, cfg entity.AutoTradeConfig) (entity.AutoTradeConfig, error) {
	if err := s.validate(cfg); err != nil {
		return cfg, err
	}
	if err := s.settings.SaveAutoTrade(ctx, cfg); err != nil {
		return cfg, err
	}
	s.notifications.Notify(ctx, "Auto trade settings saved",
		fmt.Sprintf("Strategy %s, trade amount %.0f, max position %.0f (10k yuan)", cfg.Strategy, cfg.TradeAmount, cfg.MaxPosition))

	if cfg.Enabled {
		if s.job.State() != SchedulerRunning {
			if err := s.arm(); err != nil {
				return cfg, err
			}
		}
	} else {
		s.job.Stop()
	}
	return cfg, nil
}

func (s *autoTradeService) Enable(ctx context.Context) (entity.AutoTradeConfig, error) {
	cfg, _, err := s.settings.GetAutoTrade(ctx)
	if err != nil {
		return cfg, err
	}
	cfg.Enabled = true
	if err := s.settings.SaveAutoTrade(ctx, cfg); err != nil {
		return cfg, err
	}
	if err := s.arm(); err != nil {
		return cfg, err
	}
	s.notifications.Notify(ctx, "Auto trade started", fmt.Sprintf("Trading with the %s strategy every %s", cfg.Strategy, s.interval))
	return cfg, nil
}

func (s *autoTradeService) Disable(ctx context.Context) (entity.AutoTradeConfig, error) {
	cfg, found, err := s.settings.GetAutoTrade(ctx)
	if err != nil {
		return cfg, err
	}
	s.job.Stop()
	if found {
		cfg.Enabled = false
		if err := s.settings.SaveAutoTrade(ctx, cfg); err != nil {
			return cfg, err
		}
	}
	s.notifications.Notify(ctx, "Auto trade stopped", "No further simulated trades will be executed")
	return cfg, nil
}

func (s *autoTradeService) validate(cfg entity.AutoTradeConfig) error {
	if _, err := s.strategies.Get(cfg.Strategy); err != nil {
		return err
	}
	switch {
	case cfg.TradeAmount <= 0:
		return &entity.ValidationError{Field: "tradeAmount", Message: "must be positive"}
	case cfg.MaxPosition < cfg.TradeAmount:
		return &entity.ValidationError{Field: "maxPosition", Message: "must be at least the trade amount"}
	case cfg.MinChange < 0:
		return &entity.ValidationError{Field: "minChange", Message: "must not be negative"}
	case cfg.MinVolume < 0:
		return &entity.ValidationError{Field: "minVolume", Message: "must not be negative"}
	}
	return nil
}

func (s *autoTradeService) RunOnce(ctx context.Context) (*entity.Trade, error) {
	cfg, found, err := s.settings.GetAutoTrade(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		s.logger.DebugContext(ctx, "Auto-trade skipped, no settings saved")
		return nil, nil
	}
	strat, err := s.strategies.Get(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	rows, err := s.ranking.Latest(ctx, entity.PeriodDay)
	if err != nil {
		return nil, fmt.Errorf("failed to load ranking: %w", err)
	}

	s.mu.Lock()
	trade, ok := s.executeLocked(strat, strat.Signals(rows, cfg), cfg)
	s.mu.Unlock()
	if !ok {
		s.logger.DebugContext(ctx, "Auto-trade found no executable signal", logger.StringField("strategy", cfg.Strategy))
		return nil, nil
	}

	action := "Bought"
	if trade.Side == entity.TradeSell {
		action = "Sold"
	}
	s.notifications.Notify(ctx, "Auto trade executed",
		fmt.Sprintf("%s %s (%s) at %.2f, amount %.0f (10k yuan)", action, trade.Symbol.Name, trade.Symbol.Code, trade.Price, trade.Amount))
	s.logger.InfoContext(ctx, "Simulated trade executed",
		logger.StringField("trade_id", trade.ID),
		logger.StringField("code", trade.Symbol.Code),
		logger.StringField("side", string(trade.Side)),
		logger.FloatField("price", trade.Price))
	return &trade, nil
}

// executeLocked takes the first feasible signal: buys need room under MaxPosition and a code
// not already held, sells need an open position.
func (s *autoTradeService) executeLocked(strat strategy.TradeStrategy, signals []strategy.Signal, cfg entity.AutoTradeConfig) (entity.Trade, bool) {
	now := s.now()
	for _, sig := range signals {
		code := sig.Row.Symbol.Code
		pos, held := s.positions[code]

		switch sig.Side {
		case entity.TradeBuy:
			if held || s.exposureLocked()+cfg.TradeAmount > cfg.MaxPosition {
				continue
			}
			s.positions[code] = Position{Symbol: sig.Row.Symbol, Price: sig.Row.Sample.Price, Amount: cfg.TradeAmount, OpenedAt: now}
			s.order = append(s.order, code)
		case entity.TradeSell:
			if !held {
				continue
			}
			delete(s.positions, code)
			s.order = removeCode(s.order, code)
		default:
			continue
		}

		amount := cfg.TradeAmount
		if sig.Side == entity.TradeSell {
			amount = pos.Amount
		}
		trade := entity.Trade{
			ID:         uuid.NewString(),
			Symbol:     sig.Row.Symbol,
			Side:       sig.Side,
			Price:      sig.Row.Sample.Price,
			Amount:     amount,
			Strategy:   strat.GetType(),
			Reason:     sig.Reason,
			ExecutedAt: now,
		}

		s.trades = append(s.trades, trade)
		if len(s.trades) > maxTradeHistory {
			s.trades = append([]entity.Trade(nil), s.trades[len(s.trades)-maxTradeHistory:]...)
		}
		if !utils.SameDay(s.countDay, now) {
			s.countDay, s.todayTrades = now, 0
		}
		s.todayTrades++
		return trade, true
	}
	return entity.Trade{}, false
}

func (s *autoTradeService) exposureLocked() float64 {
	total := 0.0
	for _, p := range s.positions {
		total += p.Amount
	}
	return total
}

func (s *autoTradeService) Status() AutoTradeStatus {
	state := s.job.State()
	next := s.job.Next()

	s.mu.Lock()
	defer s.mu.Unlock()

	status := AutoTradeStatus{
		State:     state,
		Exposure:  s.exposureLocked(),
		Positions: make([]Position, 0, len(s.order)),
	}
	if !next.IsZero() {
		status.NextRun = &next
	}
	if utils.SameDay(s.countDay, s.now()) {
		status.TodayTrades = s.todayTrades
	}
	for _, code := range s.order {
		status.Positions = append(status.Positions, s.positions[code])
	}
	if n := len(s.trades); n > 0 {
		last := s.trades[n-1]
		status.LastTrade = &last
	}
	return status
}

// Trades returns the recorded trades, newest first.
func (s *autoTradeService) Trades() []entity.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Trade, 0, len(s.trades))
	for i := len(s.trades) - 1; i >= 0; i-- {
		out = append(out, s.trades[i])
	}
	return out
}

func (s *autoTradeService) Strategies() []string {
	return s.strategies.Names()
}

func removeCode(codes []string, code string) []string {
	out := codes[:0]
	for _, c := range codes {
		if c != code {
			out = append(out, c)
		}
	}
	return out
}
