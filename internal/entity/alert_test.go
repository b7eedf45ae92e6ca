package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertThresholdTriggered(t *testing.T) {
	buy := AlertThreshold{Direction: AlertBuyBelow, Price: 3200}
	assert.False(t, buy.Triggered(3200.01))
	assert.True(t, buy.Triggered(3200))
	assert.True(t, buy.Triggered(3100))

	sell := AlertThreshold{Direction: AlertSellAbove, Price: 3300}
	assert.False(t, sell.Triggered(3299.99))
	assert.True(t, sell.Triggered(3300))
}

func TestParseAlertDirection(t *testing.T) {
	d, err := ParseAlertDirection("buy")
	require.NoError(t, err)
	assert.Equal(t, AlertBuyBelow, d)

	d, err = ParseAlertDirection("sell-above")
	require.NoError(t, err)
	assert.Equal(t, AlertSellAbove, d)

	_, err = ParseAlertDirection("sideways")
	assert.True(t, IsValidation(err))
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodDay, p)

	p, err = ParsePeriod("month")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonth, p)

	_, err = ParsePeriod("year")
	assert.True(t, IsValidation(err))
}
