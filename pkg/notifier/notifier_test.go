package notifier

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-dashboard/pkg/logger"
)

type fakeTelegram struct {
	sent []string
}

func (f *fakeTelegram) SendMessage(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	return nil
}

func TestNewStampsNotification(t *testing.T) {
	a := New("Title", "Message")
	b := New("Title", "Message")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestMemoryNotifierRing(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryNotifier(3)

	for i := 0; i < 5; i++ {
		require.NoError(t, m.Notify(ctx, Notification{ID: fmt.Sprint(i)}))
	}

	recent := m.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "4", recent[0].ID)
	assert.Equal(t, "2", recent[2].ID)

	assert.Len(t, m.Recent(2), 2)

	m.Clear()
	assert.Empty(t, m.Recent(10))
}

func TestTelegramNotifierFormats(t *testing.T) {
	fake := &fakeTelegram{}
	n := NewTelegramNotifier(fake)

	require.NoError(t, n.Notify(context.Background(), New("Sell alert triggered", "price reached 3300")))
	require.Len(t, fake.sent, 1)
	assert.Contains(t, fake.sent[0], "*Sell alert triggered*")
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(logger.NewNop())
	assert.NoError(t, n.Notify(context.Background(), New("a", "b")))
}
