package datasource

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"golang-stock-dashboard/internal/entity"
)

// Mock synthesizes random samples around each symbol's base price.
type Mock struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMock creates a mock source. A zero seed uses a fixed default so runs are reproducible.
func NewMock(seed int64) *Mock {
	if seed == 0 {
		seed = 1
	}
	return &Mock{rnd: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0,1). Safe for concurrent use.
func (m *Mock) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rnd.Float64()
}

// Intn returns a uniform value in [0,n). Safe for concurrent use.
func (m *Mock) Intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rnd.Intn(n)
}

// FetchSample draws a sample for a universe symbol. Volume scales with the symbol's rank
// and the period length.
func (m *Mock) FetchSample(ctx context.Context, code string, period entity.Period) (entity.Sample, error) {
	if err := ctx.Err(); err != nil {
		return entity.Sample{}, err
	}

	rank := -1
	var symbol entity.Symbol
	for i, s := range universe {
		if s.Code == code {
			rank, symbol = i, s
			break
		}
	}
	if rank < 0 {
		return entity.Sample{}, fmt.Errorf("symbol %s: %w", code, entity.ErrNotFound)
	}

	u := m.Float64()*0.1 - 0.05
	jitter := m.Float64()*0.4 + 0.8
	volume := float64(len(universe)-rank) * 50 * periodMultiplier(period) * jitter

	return entity.Sample{
		Price:         Round2(symbol.BasePrice * (1 + u)),
		ChangePercent: Round2(u * 100),
		Volume:        Round2(volume),
		Period:        period,
	}, nil
}

// GenerateSample draws a sample for a symbol with no reference base price.
func (m *Mock) GenerateSample() entity.Sample {
	return entity.Sample{
		Price:         Round2(m.Float64()*290 + 10),
		ChangePercent: Round2(m.Float64()*10 - 5),
		Volume:        Round2(m.Float64()*990 + 10),
		Period:        entity.PeriodDay,
	}
}

// Drift moves price by a slightly upward biased step of at most 0.55%.
func (m *Mock) Drift(price float64) float64 {
	return price + (m.Float64()-0.45)*price*0.01
}

// Walk moves price by a uniform step within plus or minus 1%.
func (m *Mock) Walk(price float64) float64 {
	return price + (m.Float64()*0.02-0.01)*price
}

func periodMultiplier(period entity.Period) float64 {
	switch period {
	case entity.PeriodWeek:
		return 5
	case entity.PeriodMonth:
		return 20
	default:
		return 1
	}
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
