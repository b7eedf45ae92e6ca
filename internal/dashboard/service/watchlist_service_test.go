package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-dashboard/internal/dashboard/datasource"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

func codes(entries []entity.WatchlistEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Symbol.Code)
	}
	return out
}

func newTestWatchlist(store repository.KVStore) (WatchlistService, *recordingNotifications) {
	notes := &recordingNotifications{}
	return NewWatchlistService(repository.NewWatchlistRepository(store), datasource.NewMock(5), notes, logger.NewNop()), notes
}

func TestWatchlistSeedsDefaults(t *testing.T) {
	w, _ := newTestWatchlist(repository.NewMemoryStore())

	entries, err := w.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"600519", "601318", "600036"}, codes(entries))
	assert.Equal(t, "贵州茅台", entries[0].Symbol.Name)
	assert.Equal(t, entity.SectorLiquor, entries[0].Symbol.Sector)
}

func TestWatchlistAddRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	w, notes := newTestWatchlist(repository.NewMemoryStore())

	entry, err := w.Add(ctx, " BYD ", " 002594 ")
	require.NoError(t, err)
	assert.Equal(t, "002594", entry.Symbol.Code)
	assert.Equal(t, "BYD", entry.Symbol.Name)
	assert.Equal(t, entity.SectorNewEnergyVehicles, entry.Symbol.Sector)
	assert.GreaterOrEqual(t, entry.LastSample.Price, 10.0)

	before, err := w.List(ctx)
	require.NoError(t, err)

	_, err = w.Add(ctx, "BYD again", "002594")
	assert.True(t, entity.IsDuplicate(err))
	assert.Equal(t, 1, notes.count("Stock already exists"))

	after, err := w.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{"600519", "601318", "600036", "002594"}, codes(after))
}

func TestWatchlistAddValidation(t *testing.T) {
	ctx := context.Background()
	w, notes := newTestWatchlist(repository.NewMemoryStore())

	_, err := w.Add(ctx, "", "000001")
	assert.True(t, entity.IsValidation(err))
	_, err = w.Add(ctx, "Ping An Bank", "   ")
	assert.True(t, entity.IsValidation(err))
	assert.Equal(t, 2, notes.count("Incomplete input"))

	entries, err := w.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestWatchlistUnknownCode(t *testing.T) {
	w, _ := newTestWatchlist(repository.NewMemoryStore())

	entry, err := w.Add(context.Background(), "SMIC", "688981")
	require.NoError(t, err)
	assert.Equal(t, entity.Symbol{Name: "SMIC", Code: "688981"}, entry.Symbol)
}

func TestWatchlistRemove(t *testing.T) {
	ctx := context.Background()
	w, notes := newTestWatchlist(repository.NewMemoryStore())

	require.NoError(t, w.Remove(ctx, "601318"))
	entries, err := w.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, codes(entries), "601318")
	assert.Equal(t, 1, notes.count("Removed from watchlist"))

	require.NoError(t, w.Remove(ctx, "601318"))
	require.NoError(t, w.Remove(ctx, "999999"))
	again, err := w.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, again)
	assert.Equal(t, 1, notes.count("Removed from watchlist"))
}

func TestWatchlistPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	first, _ := newTestWatchlist(store)
	_, err := first.Add(ctx, "CATL", "300750")
	require.NoError(t, err)
	require.NoError(t, first.Remove(ctx, "600519"))

	second, _ := newTestWatchlist(store)
	entries, err := second.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"601318", "600036", "300750"}, codes(entries))
}

func TestWatchlistEmptyIsNotReseeded(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	first, _ := newTestWatchlist(store)
	for _, code := range DefaultWatchlistCodes {
		require.NoError(t, first.Remove(ctx, code))
	}

	second, _ := newTestWatchlist(store)
	entries, err := second.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
