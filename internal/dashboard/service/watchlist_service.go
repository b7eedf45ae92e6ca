package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang-stock-dashboard/internal/dashboard/datasource"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/utils"
)

// SampleGenerator synthesizes the initial sample of a newly followed symbol.
type SampleGenerator interface {
	GenerateSample() entity.Sample
}

// DefaultWatchlistCodes seed the watchlist the first time the service runs.
var DefaultWatchlistCodes = []string{"600519", "601318", "600036"}

// WatchlistService owns the user's watchlist, keyed by stock code in insertion order.
type WatchlistService interface {
	List(ctx context.Context) ([]entity.WatchlistEntry, error)
	Add(ctx context.Context, name, code string) (entity.WatchlistEntry, error)
	// Remove is a no-op for codes that are not in the watchlist.
	Remove(ctx context.Context, code string) error
}

func NewWatchlistService(repo repository.WatchlistRepository, generator SampleGenerator, notifications NotificationService, log *logger.Logger) WatchlistService {
	return &watchlistService{
		repo:          repo,
		generator:     generator,
		notifications: notifications,
		logger:        log,
	}
}

type watchlistService struct {
	repo          repository.WatchlistRepository
	generator     SampleGenerator
	notifications NotificationService
	logger        *logger.Logger

	mu      sync.Mutex
	loaded  bool
	entries []entity.WatchlistEntry
}

func (s *watchlistService) List(ctx context.Context) ([]entity.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.WatchlistEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *watchlistService) Add(ctx context.Context, name, code string) (entity.WatchlistEntry, error) {
	name, code = strings.TrimSpace(name), strings.TrimSpace(code)
	if name == "" || code == "" {
		s.notifications.Notify(ctx, "Incomplete input", "Please enter both the stock code and the stock name")
		field := "code"
		if code != "" {
			field = "name"
		}
		return entity.WatchlistEntry{}, &entity.ValidationError{Field: field, Message: "stock code and name are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return entity.WatchlistEntry{}, err
	}

	for _, e := range s.entries {
		if e.Symbol.Code == code {
			s.notifications.Notify(ctx, "Stock already exists", fmt.Sprintf("%s (%s) is already in your watchlist", e.Symbol.Name, code))
			s.logger.InfoContext(ctx, "Rejected duplicate watchlist add", logger.StringField("code", code))
			return entity.WatchlistEntry{}, &entity.DuplicateError{Code: code}
		}
	}

	entry := s.newEntry(name, code)
	next := append(append([]entity.WatchlistEntry{}, s.entries...), entry)
	if err := s.repo.Save(ctx, next); err != nil {
		return entity.WatchlistEntry{}, err
	}
	s.entries = next

	s.notifications.Notify(ctx, "Added to watchlist", fmt.Sprintf("%s (%s) was added to your watchlist", name, code))
	return entry, nil
}

func (s *watchlistService) Remove(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return err
	}

	next := make([]entity.WatchlistEntry, 0, len(s.entries))
	var removed *entity.WatchlistEntry
	for i := range s.entries {
		if s.entries[i].Symbol.Code == code {
			removed = &s.entries[i]
			continue
		}
		next = append(next, s.entries[i])
	}
	if removed == nil {
		return nil
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	name := removed.Symbol.Name
	s.entries = next

	s.notifications.Notify(ctx, "Removed from watchlist", fmt.Sprintf("%s (%s) was removed from your watchlist", name, code))
	return nil
}

// loadLocked reads the persisted watchlist once, seeding the defaults when nothing was ever saved.
func (s *watchlistService) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	entries, found, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		entries = make([]entity.WatchlistEntry, 0, len(DefaultWatchlistCodes))
		for _, code := range DefaultWatchlistCodes {
			symbol, _ := datasource.Lookup(code)
			entries = append(entries, s.newEntry(symbol.Name, code))
		}
		if err := s.repo.Save(ctx, entries); err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "Seeded default watchlist", logger.IntField("entries", len(entries)))
	}
	s.entries = entries
	s.loaded = true
	return nil
}

func (s *watchlistService) newEntry(name, code string) entity.WatchlistEntry {
	symbol, ok := datasource.Lookup(code)
	if !ok {
		symbol = entity.Symbol{Code: code}
	}
	symbol.Name = name
	return entity.WatchlistEntry{
		Symbol:     symbol,
		LastSample: s.generator.GenerateSample(),
		AddedAt:    utils.TimeNowCST(),
	}
}
