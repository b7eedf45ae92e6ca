package dto

// AddWatchlistRequest adds a stock to the watchlist.
type AddWatchlistRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
