package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/common"
)

// WatchlistRepository persists the whole watchlist as one ordered list.
type WatchlistRepository interface {
	// Load reports found=false when the watchlist has never been saved.
	Load(ctx context.Context) ([]entity.WatchlistEntry, bool, error)
	Save(ctx context.Context, entries []entity.WatchlistEntry) error
}

// NewWatchlistRepository creates a watchlist repository on top of store.
func NewWatchlistRepository(store KVStore) WatchlistRepository {
	return &watchlistRepository{store: store}
}

type watchlistRepository struct {
	store KVStore
}

func (r *watchlistRepository) Load(ctx context.Context) ([]entity.WatchlistEntry, bool, error) {
	b, ok, err := r.store.Get(ctx, common.KeyWatchlist)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load watchlist: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var entries []entity.WatchlistEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal watchlist: %w", err)
	}
	return entries, true, nil
}

func (r *watchlistRepository) Save(ctx context.Context, entries []entity.WatchlistEntry) error {
	if entries == nil {
		entries = []entity.WatchlistEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal watchlist: %w", err)
	}
	if err := r.store.Set(ctx, common.KeyWatchlist, b); err != nil {
		return fmt.Errorf("failed to save watchlist: %w", err)
	}
	return nil
}
