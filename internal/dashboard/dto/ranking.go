package dto

import "golang-stock-dashboard/internal/entity"

// RankingResponse is the volume ranking for one period.
type RankingResponse struct {
	Period entity.Period       `json:"period"`
	Rows   []entity.RankingRow `json:"rows"`
}

// AnalyzeRequest asks the classifier about an arbitrary sample. BasePrice is only
// needed for codes outside the reference universe.
type AnalyzeRequest struct {
	Code          string  `json:"code"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	Volume        float64 `json:"volume"`
	Period        string  `json:"period"`
	BasePrice     float64 `json:"base_price,omitempty"`
}

// AnalyzeResponse is the classifier output with its intermediate measures.
type AnalyzeResponse struct {
	Symbol     entity.Symbol   `json:"symbol"`
	Analysis   entity.Analysis `json:"analysis"`
	Percentile float64         `json:"percentile"`
	HighVolume bool            `json:"high_volume"`
}
