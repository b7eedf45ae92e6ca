package dto

import "time"

// AutoRefreshRequest updates the auto-refresh settings. Interval is in seconds.
type AutoRefreshRequest struct {
	Enabled  bool   `json:"enabled"`
	Interval int    `json:"interval"`
	Period   string `json:"period"`
}

// AutoRefreshResponse is the persisted auto-refresh settings plus timer state.
type AutoRefreshResponse struct {
	Enabled  bool   `json:"enabled"`
	Interval int    `json:"interval"`
	Period   string `json:"period"`
	State    string `json:"state"`
}

// AutoTradeSettingsRequest updates the simulator settings. Amounts are in ten thousand yuan.
type AutoTradeSettingsRequest struct {
	Enabled     bool    `json:"enabled"`
	Strategy    string  `json:"strategy"`
	TradeAmount float64 `json:"tradeAmount"`
	MaxPosition float64 `json:"maxPosition"`
	MinChange   float64 `json:"minChange"`
	MinVolume   float64 `json:"minVolume"`
}

// ScraperSettingsRequest updates the scraper settings. Interval is in minutes.
type ScraperSettingsRequest struct {
	Sources  []string `json:"sources"`
	Interval int      `json:"interval"`
}

// ScraperSourceResponse describes one configured news source.
type ScraperSourceResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Selected bool   `json:"selected"`
}

// StateResponse reports a background loop state.
type StateResponse struct {
	State   string     `json:"state"`
	NextRun *time.Time `json:"next_run,omitempty"`
}
