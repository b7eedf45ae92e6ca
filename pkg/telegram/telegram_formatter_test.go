package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNotification(t *testing.T) {
	at := time.Date(2024, 5, 6, 1, 30, 0, 0, time.UTC)

	msg := FormatNotification("Buy alert triggered", "SSE Composite fell to 3195.00 (target 3200.00)", at)

	assert.True(t, strings.HasPrefix(msg, "🟢 *Buy alert triggered*"))
	assert.Contains(t, msg, "3195.00")
	assert.Contains(t, msg, "2024-05-06 09:30:00")
}

func TestFormatNotificationEscapesMarkdown(t *testing.T) {
	msg := FormatNotification("Auto trade", "strategy volume_breakout *done*", time.Now())

	assert.Contains(t, msg, "volume\\_breakout \\*done\\*")
	assert.True(t, strings.HasPrefix(msg, "📊"))
}

func TestNewLimiterDefaults(t *testing.T) {
	l := NewLimiter(0)
	assert.InDelta(t, 20.0/60.0, float64(l.Limit()), 0.0001)
	assert.Equal(t, 1, l.Burst())
}
