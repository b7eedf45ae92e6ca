package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceInputAcceptsNumbersAndStrings(t *testing.T) {
	cases := map[string]PriceInput{
		`{"price":3200}`:     "3200",
		`{"price":"3200.5"}`: "3200.5",
		`{"price":"abc"}`:    "abc",
		`{"price":null}`:     "",
		`{}`:                 "",
	}
	for body, want := range cases {
		var req AlertThresholdRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Equal(t, want, req.Price, body)
	}
}
