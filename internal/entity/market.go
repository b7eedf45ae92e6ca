package entity

import "time"

// MarketTicker is an index card on the dashboard.
type MarketTicker struct {
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Price         float64   `json:"price"`
	ChangePercent float64   `json:"change_percent"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RankingRow is one line of the volume ranking table.
type RankingRow struct {
	Rank     int      `json:"rank"`
	Symbol   Symbol   `json:"symbol"`
	Sample   Sample   `json:"sample"`
	Amount   float64  `json:"amount"` // turnover in hundred-million yuan
	Analysis Analysis `json:"analysis"`
}

// TradeSide is the direction of a simulated trade.
type TradeSide string

const (
	TradeBuy  TradeSide = "buy"
	TradeSell TradeSide = "sell"
)

// Trade is a simulated order recorded by the auto-trade loop. Nothing is sent to a broker.
type Trade struct {
	ID         string    `json:"id"`
	Symbol     Symbol    `json:"symbol"`
	Side       TradeSide `json:"side"`
	Price      float64   `json:"price"`
	Amount     float64   `json:"amount"`
	Strategy   string    `json:"strategy"`
	Reason     string    `json:"reason"`
	ExecutedAt time.Time `json:"executed_at"`
}
