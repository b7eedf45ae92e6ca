package service

import (
	"context"
	"sync"
	"time"

	"golang-stock-dashboard/internal/dashboard/datasource"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/utils"
)

// PriceWalker moves a price by one random step.
type PriceWalker interface {
	Drift(price float64) float64
	Walk(price float64) float64
}

// MarketService keeps the index cards shown at the top of the dashboard.
type MarketService interface {
	Start(ctx context.Context) error
	Stop()
	State() SchedulerState
	List() []entity.MarketTicker
	Price(code string) (float64, bool)
	// Tick applies the periodic drift step to every card.
	Tick()
	// Nudge applies the refresh step to every card.
	Nudge()
}

// DefaultIndices are the four index cards and their opening levels.
func DefaultIndices() []entity.MarketTicker {
	return []entity.MarketTicker{
		{Name: "SSE Composite", Code: "000001", Price: 3200},
		{Name: "SZSE Component", Code: "399001", Price: 10500},
		{Name: "ChiNext", Code: "399006", Price: 2100},
		{Name: "CSI 300", Code: "000300", Price: 3800},
	}
}

// NewMarketService creates the ticker service seeded with indices.
func NewMarketService(walker PriceWalker, indices []entity.MarketTicker, interval time.Duration, log *logger.Logger, factory TickerFactory) MarketService {
	now := utils.TimeNowCST()
	tickers := make([]entity.MarketTicker, len(indices))
	for i, t := range indices {
		t.UpdatedAt = now
		tickers[i] = t
	}
	s := &marketService{
		walker:   walker,
		tickers:  tickers,
		interval: interval,
		logger:   log,
	}
	s.scheduler = NewScheduler("market", func(context.Context) { s.Tick() }, log, factory)
	return s
}

type marketService struct {
	walker    PriceWalker
	interval  time.Duration
	logger    *logger.Logger
	scheduler *Scheduler

	mu      sync.RWMutex
	tickers []entity.MarketTicker
}

func (s *marketService) Start(ctx context.Context) error {
	s.logger.Info("Starting market ticker", logger.StringField("interval", s.interval.String()))
	return s.scheduler.Start(ctx, s.interval)
}

func (s *marketService) Stop() {
	s.scheduler.Stop()
}

func (s *marketService) State() SchedulerState {
	return s.scheduler.State()
}

func (s *marketService) List() []entity.MarketTicker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.MarketTicker, len(s.tickers))
	copy(out, s.tickers)
	return out
}

func (s *marketService) Price(code string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickers {
		if t.Code == code {
			return t.Price, true
		}
	}
	return 0, false
}

func (s *marketService) Tick() {
	s.step(s.walker.Drift)
}

func (s *marketService) Nudge() {
	s.step(s.walker.Walk)
}

func (s *marketService) step(move func(float64) float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := utils.TimeNowCST()
	for i := range s.tickers {
		t := &s.tickers[i]
		next := move(t.Price)
		t.ChangePercent = datasource.Round2((next - t.Price) / t.Price * 100)
		t.Price = datasource.Round2(next)
		t.UpdatedAt = now
	}
}
