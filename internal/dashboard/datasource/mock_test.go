package datasource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-dashboard/internal/entity"
)

func TestUniverse(t *testing.T) {
	symbols := Universe()
	require.Len(t, symbols, 20)
	assert.Equal(t, "600519", symbols[0].Code)
	assert.Equal(t, entity.SectorNewEnergyVehicles, symbols[5].Sector)

	symbols[0].Code = "changed"
	assert.Equal(t, "600519", Universe()[0].Code)

	s, ok := Lookup("601398")
	require.True(t, ok)
	assert.Equal(t, entity.SectorBanking, s.Sector)

	_, ok = Lookup("999999")
	assert.False(t, ok)
}

func TestMockFetchSampleBounds(t *testing.T) {
	m := NewMock(42)
	ctx := context.Background()

	for i, sym := range Universe() {
		for _, period := range []entity.Period{entity.PeriodDay, entity.PeriodWeek, entity.PeriodMonth} {
			s, err := m.FetchSample(ctx, sym.Code, period)
			require.NoError(t, err)

			assert.Equal(t, period, s.Period)
			assert.GreaterOrEqual(t, s.Price, Round2(sym.BasePrice*0.95))
			assert.LessOrEqual(t, s.Price, Round2(sym.BasePrice*1.05))
			assert.GreaterOrEqual(t, s.ChangePercent, -5.0)
			assert.LessOrEqual(t, s.ChangePercent, 5.0)

			maxVolume := float64(20-i) * 50 * periodMultiplier(period) * 1.2
			minVolume := float64(20-i) * 50 * periodMultiplier(period) * 0.8
			assert.GreaterOrEqual(t, s.Volume, Round2(minVolume))
			assert.LessOrEqual(t, s.Volume, Round2(maxVolume))
		}
	}
}

func TestMockFetchSampleErrors(t *testing.T) {
	m := NewMock(1)

	_, err := m.FetchSample(context.Background(), "999999", entity.PeriodDay)
	assert.True(t, errors.Is(err, entity.ErrNotFound))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.FetchSample(ctx, "600519", entity.PeriodDay)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockIsReproducible(t *testing.T) {
	a, b := NewMock(7), NewMock(7)
	for i := 0; i < 10; i++ {
		sa, err := a.FetchSample(context.Background(), "300750", entity.PeriodWeek)
		require.NoError(t, err)
		sb, err := b.FetchSample(context.Background(), "300750", entity.PeriodWeek)
		require.NoError(t, err)
		assert.Equal(t, sa, sb)
	}
}

func TestMockGenerateSampleAndWalks(t *testing.T) {
	m := NewMock(3)
	for i := 0; i < 200; i++ {
		s := m.GenerateSample()
		assert.GreaterOrEqual(t, s.Price, 10.0)
		assert.LessOrEqual(t, s.Price, 300.0)
		assert.GreaterOrEqual(t, s.ChangePercent, -5.0)
		assert.LessOrEqual(t, s.ChangePercent, 5.0)
		assert.GreaterOrEqual(t, s.Volume, 10.0)
		assert.LessOrEqual(t, s.Volume, 1000.0)

		d := m.Drift(1000)
		assert.InDelta(t, 1000, d, 5.5)
		w := m.Walk(1000)
		assert.InDelta(t, 1000, w, 10)
	}
}
