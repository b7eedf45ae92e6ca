// Package strategy picks simulated trades from a ranking snapshot.
package strategy

import (
	"fmt"
	"sort"

	"golang-stock-dashboard/internal/entity"
)

const (
	VolumeBreakout = "volume-breakout"
	MeanReversion  = "mean-reversion"
)

// Signal is a candidate trade proposed by a strategy.
type Signal struct {
	Row    entity.RankingRow
	Side   entity.TradeSide
	Reason string
}

// TradeStrategy proposes candidate trades, best first.
type TradeStrategy interface {
	Signals(rows []entity.RankingRow, cfg entity.AutoTradeConfig) []Signal
	GetType() string
}

// Registry maps strategy names to implementations.
type Registry map[string]TradeStrategy

// NewRegistry registers the given strategies, or the built-in ones when none are given.
func NewRegistry(strategies ...TradeStrategy) Registry {
	if len(strategies) == 0 {
		strategies = []TradeStrategy{NewVolumeBreakoutStrategy(), NewMeanReversionStrategy()}
	}
	r := Registry{}
	for _, s := range strategies {
		r[s.GetType()] = s
	}
	return r
}

// Get returns the named strategy or a ValidationError.
func (r Registry) Get(name string) (TradeStrategy, error) {
	s, ok := r[name]
	if !ok {
		return nil, &entity.ValidationError{Field: "strategy", Message: fmt.Sprintf("unknown strategy %q", name)}
	}
	return s, nil
}

// Names lists the registered strategies in alphabetical order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
