package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/dashboard/strategy"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

// stubRanking serves a fixed ranking.
type stubRanking struct {
	RefreshService
	rows []entity.RankingRow
}

func (s *stubRanking) Latest(context.Context, entity.Period) ([]entity.RankingRow, error) {
	return s.rows, nil
}

func rankingRow(code string, price, change, volume float64, suggestion entity.Suggestion) entity.RankingRow {
	return entity.RankingRow{
		Symbol:   entity.Symbol{Name: "name-" + code, Code: code},
		Sample:   entity.Sample{Price: price, ChangePercent: change, Volume: volume, Period: entity.PeriodDay},
		Analysis: entity.Analysis{Suggestion: suggestion},
	}
}

func newTestAutoTrade(rows []entity.RankingRow) (AutoTradeService, *stubRanking, repository.SettingsRepository, *recordingNotifications) {
	ranking := &stubRanking{rows: rows}
	settings := newTestSettings()
	notes := &recordingNotifications{}
	svc := NewAutoTradeService(ranking, settings, strategy.NewRegistry(), notes, 30*time.Second, logger.NewNop())
	return svc, ranking, settings, notes
}

func TestAutoTradeSkipsWithoutSettings(t *testing.T) {
	svc, _, _, notes := newTestAutoTrade([]entity.RankingRow{rankingRow("A", 10, -4, 900, entity.SuggestionBuy)})

	trade, err := svc.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Nil(t, trade)
	assert.Empty(t, notes.Recent(0))
	assert.Empty(t, svc.Trades())
}

func TestAutoTradeCapsExposure(t *testing.T) {
	ctx := context.Background()
	svc, _, settings, notes := newTestAutoTrade([]entity.RankingRow{
		rankingRow("A", 10, -4, 900, entity.SuggestionBuy),
		rankingRow("B", 20, -5, 800, entity.SuggestionBuy),
		rankingRow("C", 30, 2.5, 700, entity.SuggestionBuy),
	})
	require.NoError(t, settings.SaveAutoTrade(ctx, entity.AutoTradeConfig{
		Strategy: strategy.VolumeBreakout, TradeAmount: 10, MaxPosition: 20, MinChange: 2, MinVolume: 100,
	}))

	first, err := svc.RunOnce(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "A", first.Symbol.Code)
	assert.Equal(t, entity.TradeBuy, first.Side)
	assert.NotEmpty(t, first.ID)

	second, err := svc.RunOnce(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "B", second.Symbol.Code)

	third, err := svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.Nil(t, third)

	status := svc.Status()
	assert.Equal(t, 2, status.TodayTrades)
	assert.Equal(t, 20.0, status.Exposure)
	require.Len(t, status.Positions, 2)
	assert.Equal(t, "A", status.Positions[0].Symbol.Code)
	assert.Equal(t, "B", status.LastTrade.Symbol.Code)
	assert.Equal(t, 2, notes.count("Auto trade executed"))

	trades := svc.Trades()
	require.Len(t, trades, 2)
	assert.Equal(t, "B", trades[0].Symbol.Code)
}

func TestAutoTradeSellClosesPosition(t *testing.T) {
	ctx := context.Background()
	svc, ranking, settings, _ := newTestAutoTrade([]entity.RankingRow{
		rankingRow("A", 10, -4, 900, entity.SuggestionBuy),
	})
	require.NoError(t, settings.SaveAutoTrade(ctx, testDefaults.AutoTrade))

	_, err := svc.RunOnce(ctx)
	require.NoError(t, err)

	ranking.rows = []entity.RankingRow{
		rankingRow("Z", 50, 5, 990, entity.SuggestionSell),
		rankingRow("A", 11, 4, 900, entity.SuggestionSell),
	}
	trade, err := svc.RunOnce(ctx)
	require.NoError(t, err)
	require.NotNil(t, trade)
	assert.Equal(t, "A", trade.Symbol.Code)
	assert.Equal(t, entity.TradeSell, trade.Side)
	assert.Equal(t, 11.0, trade.Price)
	assert.Equal(t, 10.0, trade.Amount)

	status := svc.Status()
	assert.Empty(t, status.Positions)
	assert.Equal(t, 0.0, status.Exposure)
	assert.Equal(t, 2, status.TodayTrades)
}

func TestAutoTradeMeanReversion(t *testing.T) {
	ctx := context.Background()
	svc, _, settings, _ := newTestAutoTrade([]entity.RankingRow{
		rankingRow("A", 10, 2.5, 150, entity.SuggestionHold),
		rankingRow("B", 10, -4.5, 120, entity.SuggestionHold),
	})
	cfg := testDefaults.AutoTrade
	cfg.Strategy = strategy.MeanReversion
	require.NoError(t, settings.SaveAutoTrade(ctx, cfg))

	trade, err := svc.RunOnce(ctx)
	require.NoError(t, err)
	require.NotNil(t, trade)
	assert.Equal(t, "B", trade.Symbol.Code)
	assert.Equal(t, strategy.MeanReversion, trade.Strategy)
}

func TestAutoTradeUpdateSettingsValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, settings, _ := newTestAutoTrade(nil)

	bad := []entity.AutoTradeConfig{
		{Strategy: "martingale", TradeAmount: 10, MaxPosition: 30},
		{Strategy: strategy.VolumeBreakout, TradeAmount: 0, MaxPosition: 30},
		{Strategy: strategy.VolumeBreakout, TradeAmount: 40, MaxPosition: 30},
		{Strategy: strategy.VolumeBreakout, TradeAmount: 10, MaxPosition: 30, MinChange: -1},
	}
	for _, cfg := range bad {
		_, err := svc.UpdateSettings(ctx, cfg)
		assert.True(t, entity.IsValidation(err), cfg)
	}

	_, found, err := settings.GetAutoTrade(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAutoTradeEnableDisable(t *testing.T) {
	ctx := context.Background()
	svc, _, settings, notes := newTestAutoTrade(nil)
	defer svc.Stop()

	cfg, err := svc.Enable(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, SchedulerRunning, svc.Status().State)
	assert.NotNil(t, svc.Status().NextRun)
	assert.Equal(t, 1, notes.count("Auto trade started"))

	saved, found, err := settings.GetAutoTrade(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, saved.Enabled)

	cfg, err = svc.Disable(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, SchedulerStopped, svc.Status().State)

	restarted := NewAutoTradeService(&stubRanking{}, settings, strategy.NewRegistry(), notes, 30*time.Second, logger.NewNop())
	require.NoError(t, restarted.Start(ctx))
	assert.Equal(t, SchedulerStopped, restarted.Status().State)
	assert.Equal(t, []string{strategy.MeanReversion, strategy.VolumeBreakout}, restarted.Strategies())
}
