package strategy

import (
	"fmt"
	"sort"

	"golang-stock-dashboard/internal/entity"
)

// MeanReversionStrategy fades large moves: it buys sharp drops and sells sharp rallies.
type MeanReversionStrategy struct{}

func NewMeanReversionStrategy() *MeanReversionStrategy {
	return &MeanReversionStrategy{}
}

func (s *MeanReversionStrategy) GetType() string {
	return MeanReversion
}

// Signals returns rows moving at least MinChange on at least MinVolume, largest move first.
func (s *MeanReversionStrategy) Signals(rows []entity.RankingRow, cfg entity.AutoTradeConfig) []Signal {
	var signals []Signal
	for _, row := range rows {
		change := row.Sample.ChangePercent
		if change == 0 || abs(change) < cfg.MinChange || row.Sample.Volume < cfg.MinVolume {
			continue
		}
		side := entity.TradeBuy
		if change > 0 {
			side = entity.TradeSell
		}
		signals = append(signals, Signal{
			Row:    row,
			Side:   side,
			Reason: fmt.Sprintf("mean reversion: change %.2f%% expected to revert", change),
		})
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return abs(signals[i].Row.Sample.ChangePercent) > abs(signals[j].Row.Sample.ChangePercent)
	})
	return signals
}
