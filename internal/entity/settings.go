package entity

// AutoRefreshConfig controls the ranking refresh scheduler.
type AutoRefreshConfig struct {
	Enabled  bool   `json:"enabled"`
	Interval int    `json:"interval"` // seconds
	Period   Period `json:"period"`
}

// AutoTradeConfig controls the simulated auto-trade loop. Amounts are in units of ten thousand yuan.
type AutoTradeConfig struct {
	Enabled     bool    `json:"enabled"`
	Strategy    string  `json:"strategy"`
	TradeAmount float64 `json:"tradeAmount"`
	MaxPosition float64 `json:"maxPosition"`
	MinChange   float64 `json:"minChange"`
	MinVolume   float64 `json:"minVolume"`
}

// ScraperConfig selects which data sources the scraper polls and how often.
type ScraperConfig struct {
	Sources  []string `json:"sources"`
	Interval int      `json:"interval"` // minutes
}
