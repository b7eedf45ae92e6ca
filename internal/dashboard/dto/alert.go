package dto

import (
	"bytes"
	"encoding/json"
)

// PriceInput accepts a JSON number or string so that non-numeric input reaches validation
// instead of failing to bind.
type PriceInput string

func (p *PriceInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceInput(s)
		return nil
	}
	if string(b) == "null" {
		*p = ""
		return nil
	}
	*p = PriceInput(b)
	return nil
}

// AlertThresholdRequest sets the pending threshold for one direction.
type AlertThresholdRequest struct {
	Price PriceInput `json:"price" swaggertype:"string"`
}

// AlertMethodsRequest selects notification delivery methods.
type AlertMethodsRequest struct {
	Methods []string `json:"methods"`
}

// AlertMethodsResponse lists the selected delivery methods.
type AlertMethodsResponse struct {
	Methods []string `json:"methods"`
}
