package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-dashboard/pkg/logger"
)

// stepWalker moves every price by a fixed fraction.
type stepWalker struct {
	drift float64
	walk  float64
}

func (w stepWalker) Drift(price float64) float64 { return price * (1 + w.drift) }
func (w stepWalker) Walk(price float64) float64  { return price * (1 + w.walk) }

func TestMarketServiceSteps(t *testing.T) {
	s := NewMarketService(stepWalker{drift: 0.005, walk: -0.01}, DefaultIndices(), time.Second, logger.NewNop(), nil)

	price, ok := s.Price("000001")
	require.True(t, ok)
	assert.Equal(t, 3200.0, price)

	s.Tick()
	price, _ = s.Price("000001")
	assert.Equal(t, 3216.0, price)
	assert.Equal(t, 0.5, s.List()[0].ChangePercent)

	s.Nudge()
	price, _ = s.Price("000001")
	assert.Equal(t, 3183.84, price)
	assert.Equal(t, -1.0, s.List()[0].ChangePercent)

	_, ok = s.Price("nope")
	assert.False(t, ok)
}

func TestMarketServiceListIsACopy(t *testing.T) {
	s := NewMarketService(stepWalker{}, DefaultIndices(), time.Second, logger.NewNop(), nil)

	list := s.List()
	require.Len(t, list, 4)
	list[0].Price = 1

	price, _ := s.Price("000001")
	assert.Equal(t, 3200.0, price)
}

func TestMarketServiceScheduler(t *testing.T) {
	clock := &fakeClock{}
	s := NewMarketService(stepWalker{drift: 0.01}, DefaultIndices(), time.Second, logger.NewNop(), clock.factory)

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, SchedulerRunning, s.State())

	clock.last().tick()
	assert.Eventually(t, func() bool {
		p, _ := s.Price("399006")
		return p == 2121
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	assert.Equal(t, SchedulerStopped, s.State())
}
