package entity

import "fmt"

// Period is the aggregation window a sample's volume refers to.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod validates s, treating the empty string as day.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodDay, nil
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(s), nil
	default:
		return "", &ValidationError{Field: "period", Message: fmt.Sprintf("unknown period %q, want day, week or month", s)}
	}
}

// Sample is one snapshot of price, change and volume for a symbol.
// Volume is expressed in ten-thousand-share lots.
type Sample struct {
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	Volume        float64 `json:"volume"`
	Period        Period  `json:"period"`
}
