package entity

import "fmt"

// AlertDirection says which side of the threshold fires an alert.
type AlertDirection string

const (
	AlertBuyBelow  AlertDirection = "buy-below"
	AlertSellAbove AlertDirection = "sell-above"
)

// ParseAlertDirection accepts the canonical names as well as the short forms buy and sell.
func ParseAlertDirection(s string) (AlertDirection, error) {
	switch s {
	case string(AlertBuyBelow), "buy":
		return AlertBuyBelow, nil
	case string(AlertSellAbove), "sell":
		return AlertSellAbove, nil
	default:
		return "", &ValidationError{Field: "direction", Message: fmt.Sprintf("unknown alert direction %q", s)}
	}
}

// AlertThreshold is a one-shot trigger price. It is deleted once it fires.
type AlertThreshold struct {
	Direction AlertDirection `json:"direction"`
	Price     float64        `json:"price"`
}

// Triggered reports whether price crosses the threshold.
func (a AlertThreshold) Triggered(price float64) bool {
	switch a.Direction {
	case AlertBuyBelow:
		return price <= a.Price
	case AlertSellAbove:
		return price >= a.Price
	default:
		return false
	}
}
