package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-dashboard/internal/dashboard/analyzer"
	"golang-stock-dashboard/internal/dashboard/datasource"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

type refreshFixture struct {
	svc      RefreshService
	market   MarketService
	notes    *recordingNotifications
	clock    *fakeClock
	settings interface {
		GetAutoRefresh(ctx context.Context) (entity.AutoRefreshConfig, bool, error)
	}
}

func newRefreshFixture(t *testing.T) refreshFixture {
	t.Helper()
	market := NewMarketService(stepWalker{walk: -0.01}, DefaultIndices(), time.Second, logger.NewNop(), nil)
	settings := newTestSettings()
	notes := &recordingNotifications{}
	clock := &fakeClock{}
	svc := NewRefreshService(datasource.NewMock(11), market, settings, notes, logger.NewNop(), clock.factory)
	t.Cleanup(svc.Stop)
	return refreshFixture{svc: svc, market: market, notes: notes, clock: clock, settings: settings}
}

func TestTurnover(t *testing.T) {
	assert.Equal(t, 116.0, Turnover(800, 1450))
	assert.Equal(t, 0.13, Turnover(123.45, 10.5))
	assert.Equal(t, 0.0, Turnover(0, 100))
}

func TestRefreshBuildsRanking(t *testing.T) {
	f := newRefreshFixture(t)
	ctx := context.Background()

	rows, err := f.svc.Refresh(ctx, entity.PeriodWeek)
	require.NoError(t, err)
	require.Len(t, rows, 20)

	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
		assert.Equal(t, entity.PeriodWeek, row.Sample.Period)
		assert.Equal(t, Turnover(row.Sample.Volume, row.Sample.Price), row.Amount)
		assert.Equal(t, analyzer.Analyze(row.Symbol, row.Sample), row.Analysis)
	}
	assert.Equal(t, "600519", rows[0].Symbol.Code)

	price, _ := f.market.Price("000001")
	assert.Equal(t, 3168.0, price)

	latest, err := f.svc.Latest(ctx, entity.PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, rows, latest)

	price, _ = f.market.Price("000001")
	assert.Equal(t, 3168.0, price)
}

func TestLatestRefreshesOnMiss(t *testing.T) {
	f := newRefreshFixture(t)

	rows, err := f.svc.Latest(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 20)
	assert.Equal(t, entity.PeriodDay, rows[0].Sample.Period)
}

func TestAnalyzeSample(t *testing.T) {
	f := newRefreshFixture(t)
	ctx := context.Background()

	symbol, analysis, err := f.svc.Analyze(ctx, "600519", entity.Sample{Price: 1450, ChangePercent: -4, Volume: 800}, 0)
	require.NoError(t, err)
	assert.Equal(t, entity.SectorLiquor, symbol.Sector)
	assert.Equal(t, entity.SuggestionBuy, analysis.Suggestion)

	_, _, err = f.svc.Analyze(ctx, "688981", entity.Sample{Price: 50, ChangePercent: 1, Volume: 10}, 0)
	assert.True(t, entity.IsValidation(err))

	symbol, analysis, err = f.svc.Analyze(ctx, "688981", entity.Sample{Price: 50, ChangePercent: 1, Volume: 10}, 50)
	require.NoError(t, err)
	assert.Equal(t, 50.0, symbol.BasePrice)
	assert.Equal(t, entity.SuggestionHold, analysis.Suggestion)

	_, _, err = f.svc.Analyze(ctx, "600519", entity.Sample{Price: 1, Period: "year"}, 0)
	assert.True(t, entity.IsValidation(err))
}

func TestUpdateSettingsValidation(t *testing.T) {
	f := newRefreshFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpdateSettings(ctx, entity.AutoRefreshConfig{Enabled: true, Interval: 0, Period: entity.PeriodDay})
	assert.True(t, entity.IsValidation(err))

	_, err = f.svc.UpdateSettings(ctx, entity.AutoRefreshConfig{Enabled: true, Interval: 5, Period: "year"})
	assert.True(t, entity.IsValidation(err))

	_, found, err := f.settings.GetAutoRefresh(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, SchedulerStopped, f.svc.State())
	assert.Equal(t, 0, f.clock.count())
}

func TestUpdateSettingsRestartsTimer(t *testing.T) {
	f := newRefreshFixture(t)
	ctx := context.Background()

	cfg, err := f.svc.UpdateSettings(ctx, entity.AutoRefreshConfig{Enabled: true, Interval: 3})
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodDay, cfg.Period)
	assert.Equal(t, SchedulerRunning, f.svc.State())
	first := f.clock.last()

	_, err = f.svc.UpdateSettings(ctx, entity.AutoRefreshConfig{Enabled: true, Interval: 7, Period: entity.PeriodMonth})
	require.NoError(t, err)
	assert.Equal(t, 2, f.clock.count())
	assert.True(t, first.stopped.Load())

	f.clock.last().tick()
	assert.Eventually(t, func() bool {
		p, _ := f.market.Price("000001")
		return p == 3168
	}, time.Second, 5*time.Millisecond)

	rows, err := f.svc.Latest(ctx, entity.PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodMonth, rows[0].Sample.Period)

	saved, found, err := f.settings.GetAutoRefresh(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, saved.Interval)
	assert.Equal(t, 2, f.notes.count("Auto refresh enabled"))

	_, err = f.svc.UpdateSettings(ctx, entity.AutoRefreshConfig{Enabled: false, Interval: 7, Period: entity.PeriodMonth})
	require.NoError(t, err)
	assert.Equal(t, SchedulerStopped, f.svc.State())
	assert.Equal(t, 1, f.notes.count("Auto refresh disabled"))
}

func TestRefreshStartRestoresSettings(t *testing.T) {
	settings := newTestSettings()
	ctx := context.Background()
	require.NoError(t, settings.SaveAutoRefresh(ctx, entity.AutoRefreshConfig{Enabled: true, Interval: 9, Period: entity.PeriodWeek}))

	market := NewMarketService(stepWalker{}, DefaultIndices(), time.Second, logger.NewNop(), nil)
	clock := &fakeClock{}
	svc := NewRefreshService(datasource.NewMock(1), market, settings, &recordingNotifications{}, logger.NewNop(), clock.factory)
	defer svc.Stop()

	require.NoError(t, svc.Start(ctx))
	assert.Equal(t, SchedulerRunning, svc.State())
	assert.Equal(t, 1, clock.count())

	disabled := NewRefreshService(datasource.NewMock(1), market, newTestSettings(), &recordingNotifications{}, logger.NewNop(), clock.factory)
	require.NoError(t, disabled.Start(ctx))
	assert.Equal(t, SchedulerStopped, disabled.State())
}
