package entity

import "time"

// WatchlistEntry is a user followed symbol together with its last known sample.
type WatchlistEntry struct {
	Symbol     Symbol    `json:"symbol"`
	LastSample Sample    `json:"last_sample"`
	AddedAt    time.Time `json:"added_at"`
}
