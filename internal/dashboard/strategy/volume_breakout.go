package strategy

import (
	"fmt"
	"sort"

	"golang-stock-dashboard/internal/dashboard/analyzer"
	"golang-stock-dashboard/internal/entity"
)

// VolumeBreakoutStrategy follows the classifier on heavy-volume moves.
type VolumeBreakoutStrategy struct{}

func NewVolumeBreakoutStrategy() *VolumeBreakoutStrategy {
	return &VolumeBreakoutStrategy{}
}

func (s *VolumeBreakoutStrategy) GetType() string {
	return VolumeBreakout
}

// Signals returns rows with high volume, a move of at least MinChange and a buy or sell
// suggestion, ordered by volume descending.
func (s *VolumeBreakoutStrategy) Signals(rows []entity.RankingRow, cfg entity.AutoTradeConfig) []Signal {
	var signals []Signal
	for _, row := range rows {
		sample := row.Sample
		if sample.Volume <= analyzer.VolumeThreshold(sample.Period) || sample.Volume < cfg.MinVolume {
			continue
		}
		if abs(sample.ChangePercent) < cfg.MinChange {
			continue
		}

		var side entity.TradeSide
		switch row.Analysis.Suggestion {
		case entity.SuggestionBuy:
			side = entity.TradeBuy
		case entity.SuggestionSell:
			side = entity.TradeSell
		default:
			continue
		}
		signals = append(signals, Signal{
			Row:    row,
			Side:   side,
			Reason: fmt.Sprintf("volume breakout: %.0f x10k lots, change %.2f%%", sample.Volume, sample.ChangePercent),
		})
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Row.Sample.Volume > signals[j].Row.Sample.Volume
	})
	return signals
}
