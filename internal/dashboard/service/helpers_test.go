package service

import (
	"context"
	"sync"

	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/notifier"
)

var testDefaults = repository.SettingsDefaults{
	AutoRefresh: entity.AutoRefreshConfig{Interval: 5, Period: entity.PeriodDay},
	AutoTrade: entity.AutoTradeConfig{
		Strategy: "volume-breakout", TradeAmount: 10, MaxPosition: 30, MinChange: 2, MinVolume: 100,
	},
	Scraper: entity.ScraperConfig{Sources: []string{}, Interval: 5},
}

func newTestSettings() repository.SettingsRepository {
	return repository.NewSettingsRepository(repository.NewMemoryStore(), testDefaults)
}

// recordingNotifications captures every notification in memory.
type recordingNotifications struct {
	mu    sync.Mutex
	items []notifier.Notification
}

func (r *recordingNotifications) Notify(_ context.Context, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, notifier.Notification{Title: title, Message: message})
}

func (r *recordingNotifications) Recent(int) []notifier.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notifier.Notification(nil), r.items...)
}

func (r *recordingNotifications) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

func (r *recordingNotifications) count(title string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, it := range r.items {
		if it.Title == title {
			n++
		}
	}
	return n
}

func (r *recordingNotifications) last() notifier.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return notifier.Notification{}
	}
	return r.items[len(r.items)-1]
}
