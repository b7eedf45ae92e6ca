package entity

// Suggestion is the discrete recommendation produced by the classifier.
type Suggestion string

const (
	SuggestionBuy  Suggestion = "buy"
	SuggestionSell Suggestion = "sell"
	SuggestionHold Suggestion = "hold"
)

// Analysis pairs a suggestion with its human readable rationale.
type Analysis struct {
	Suggestion Suggestion `json:"suggestion"`
	Rationale  string     `json:"rationale"`
}
