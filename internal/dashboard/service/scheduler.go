package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// SchedulerState is the lifecycle state of a Scheduler.
type SchedulerState string

const (
	SchedulerStopped SchedulerState = "stopped"
	SchedulerRunning SchedulerState = "running"
)

// Ticker is the subset of time.Ticker the scheduler needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Scheduler runs a task on a fixed interval and owns at most one timer at a time.
// Start while running stops the current timer first.
type Scheduler struct {
	name      string
	task      func(ctx context.Context)
	logger    *logger.Logger
	newTicker TickerFactory

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	runCtx   context.Context
	interval time.Duration
}

// NewScheduler creates a stopped scheduler. A nil factory uses real tickers.
func NewScheduler(name string, task func(ctx context.Context), log *logger.Logger, factory TickerFactory) *Scheduler {
	if factory == nil {
		factory = NewRealTicker
	}
	return &Scheduler{
		name:      name,
		task:      task,
		logger:    log,
		newTicker: factory,
	}
}

// Start arms a new timer, replacing any existing one. The loop ends when ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return &entity.ValidationError{Field: "interval", Message: fmt.Sprintf("must be positive, got %s", interval)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := s.newTicker(interval)
	s.cancel, s.done, s.runCtx, s.interval = cancel, done, runCtx, interval

	go s.loop(runCtx, ticker, done)

	s.logger.Debug("Scheduler started", logger.StringField("scheduler", s.name), logger.StringField("interval", interval.String()))
	return nil
}

// Stop disarms the timer and waits for an in-flight tick to finish. Stopping a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopLocked() {
		s.logger.Debug("Scheduler stopped", logger.StringField("scheduler", s.name))
	}
}

func (s *Scheduler) stopLocked() bool {
	if s.cancel == nil {
		return false
	}
	s.cancel()
	<-s.done
	s.cancel, s.done, s.runCtx = nil, nil, nil
	return true
}

// State reports whether a timer is armed.
func (s *Scheduler) State() SchedulerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runCtx == nil || s.runCtx.Err() != nil {
		return SchedulerStopped
	}
	return SchedulerRunning
}

// Interval returns the interval of the current or most recent run.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *Scheduler) loop(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.runTask(ctx)
		}
	}
}

func (s *Scheduler) runTask(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Scheduler task panicked",
				logger.StringField("scheduler", s.name),
				logger.Field("panic", r),
				logger.StringField("stack", string(debug.Stack())))
		}
	}()
	s.task(ctx)
}
