package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"
)

// AlertMonitor checks the reference index against the pending buy and sell thresholds.
type AlertMonitor interface {
	Start(ctx context.Context) error
	Stop()
	State() SchedulerState
	SetThreshold(ctx context.Context, direction entity.AlertDirection, rawPrice string) (entity.AlertThreshold, error)
	ClearThreshold(ctx context.Context, direction entity.AlertDirection) error
	Thresholds(ctx context.Context) ([]entity.AlertThreshold, error)
	// Check fires and deletes every threshold price crosses and returns the fired ones.
	Check(ctx context.Context, price float64) ([]entity.AlertThreshold, error)
	Methods(ctx context.Context) ([]string, error)
	SetMethods(ctx context.Context, methods []string) ([]string, error)
}

// NewAlertMonitor creates a monitor that watches referenceCode on the market service every interval.
func NewAlertMonitor(
	market MarketService,
	settings repository.SettingsRepository,
	notifications NotificationService,
	referenceCode string,
	interval time.Duration,
	log *logger.Logger,
	factory TickerFactory,
) AlertMonitor {
	m := &alertMonitor{
		market:        market,
		settings:      settings,
		notifications: notifications,
		referenceCode: referenceCode,
		interval:      interval,
		logger:        log,
	}
	m.scheduler = NewScheduler("alert-monitor", m.tick, log, factory)
	return m
}

type alertMonitor struct {
	market        MarketService
	settings      repository.SettingsRepository
	notifications NotificationService
	referenceCode string
	interval      time.Duration
	logger        *logger.Logger
	scheduler     *Scheduler

	// mu serializes threshold reads and writes so a threshold fires at most once.
	mu sync.Mutex
}

func (m *alertMonitor) Start(ctx context.Context) error {
	m.logger.Info("Starting alert monitor",
		logger.StringField("reference", m.referenceCode), logger.StringField("interval", m.interval.String()))
	return m.scheduler.Start(ctx, m.interval)
}

func (m *alertMonitor) Stop() {
	m.scheduler.Stop()
}

func (m *alertMonitor) State() SchedulerState {
	return m.scheduler.State()
}

func (m *alertMonitor) tick(ctx context.Context) {
	price, ok := m.market.Price(m.referenceCode)
	if !ok {
		m.logger.Warn("Reference index not found", logger.StringField("code", m.referenceCode))
		return
	}
	if _, err := m.Check(ctx, price); err != nil {
		m.logger.ErrorContext(ctx, "Alert check failed", logger.ErrorField(err))
	}
}

func (m *alertMonitor) SetThreshold(ctx context.Context, direction entity.AlertDirection, rawPrice string) (entity.AlertThreshold, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(rawPrice), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		m.notifications.Notify(ctx, "Invalid price", "Please enter a valid alert price")
		return entity.AlertThreshold{}, &entity.ValidationError{Field: "price", Message: fmt.Sprintf("%q is not a valid price", rawPrice)}
	}

	threshold := entity.AlertThreshold{Direction: direction, Price: price}

	m.mu.Lock()
	err = m.settings.SaveAlert(ctx, threshold)
	m.mu.Unlock()
	if err != nil {
		return entity.AlertThreshold{}, err
	}

	name := m.referenceName()
	if direction == entity.AlertBuyBelow {
		m.notifications.Notify(ctx, "Buy alert set", fmt.Sprintf("You will be notified when %s falls to %s or below", name, formatPrice(price)))
	} else {
		m.notifications.Notify(ctx, "Sell alert set", fmt.Sprintf("You will be notified when %s rises to %s or above", name, formatPrice(price)))
	}
	m.logger.InfoContext(ctx, "Alert threshold saved", logger.StringField("direction", string(direction)), logger.FloatField("price", price))
	return threshold, nil
}

func (m *alertMonitor) ClearThreshold(ctx context.Context, direction entity.AlertDirection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings.DeleteAlert(ctx, direction)
}

func (m *alertMonitor) Thresholds(ctx context.Context) ([]entity.AlertThreshold, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending(ctx)
}

func (m *alertMonitor) pending(ctx context.Context) ([]entity.AlertThreshold, error) {
	out := []entity.AlertThreshold{}
	for _, direction := range []entity.AlertDirection{entity.AlertBuyBelow, entity.AlertSellAbove} {
		threshold, found, err := m.settings.GetAlert(ctx, direction)
		if err != nil {
			return nil, err
		}
		if found {
			out = append(out, threshold)
		}
	}
	return out, nil
}

func (m *alertMonitor) Check(ctx context.Context, price float64) ([]entity.AlertThreshold, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending, err := m.pending(ctx)
	if err != nil {
		return nil, err
	}

	fired := []entity.AlertThreshold{}
	name := m.referenceName()
	for _, threshold := range pending {
		if !threshold.Triggered(price) {
			continue
		}
		if err := m.settings.DeleteAlert(ctx, threshold.Direction); err != nil {
			return fired, err
		}
		fired = append(fired, threshold)

		if threshold.Direction == entity.AlertBuyBelow {
			m.notifications.Notify(ctx, "Buy alert", fmt.Sprintf("%s is at %s, at or below your buy price %s; consider buying.",
				name, formatPrice(price), formatPrice(threshold.Price)))
		} else {
			m.notifications.Notify(ctx, "Sell alert", fmt.Sprintf("%s is at %s, at or above your sell price %s; consider selling.",
				name, formatPrice(price), formatPrice(threshold.Price)))
		}
		m.logger.InfoContext(ctx, "Alert fired",
			logger.StringField("direction", string(threshold.Direction)),
			logger.FloatField("threshold", threshold.Price),
			logger.FloatField("price", price))
	}
	return fired, nil
}

func (m *alertMonitor) Methods(ctx context.Context) ([]string, error) {
	methods, err := m.settings.GetAlertMethods(ctx)
	if err != nil {
		return nil, err
	}
	if methods == nil {
		methods = []string{common.AlertMethodInApp}
	}
	return methods, nil
}

// SetMethods persists the selected delivery methods, dropping duplicates. Unknown methods are rejected.
func (m *alertMonitor) SetMethods(ctx context.Context, methods []string) ([]string, error) {
	seen := map[string]bool{}
	clean := []string{}
	for _, method := range methods {
		switch method {
		case common.AlertMethodInApp, common.AlertMethodTelegram, common.AlertMethodStream:
		default:
			return nil, &entity.ValidationError{Field: "methods", Message: fmt.Sprintf("unknown alert method %q", method)}
		}
		if !seen[method] {
			seen[method] = true
			clean = append(clean, method)
		}
	}
	if err := m.settings.SaveAlertMethods(ctx, clean); err != nil {
		return nil, err
	}
	m.notifications.Notify(ctx, "Alert methods saved", fmt.Sprintf("Notifications will be delivered via: %s", strings.Join(clean, ", ")))
	return clean, nil
}

func (m *alertMonitor) referenceName() string {
	for _, t := range m.market.List() {
		if t.Code == m.referenceCode {
			return t.Name
		}
	}
	return m.referenceCode
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
