package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-stock-dashboard/pkg/utils"
)

const maxMessageLen = 4090

// FormatNotification renders a dashboard notification as a Markdown message.
func FormatNotification(title, message string, at time.Time) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s *%s*\n", iconFor(title), escapeMarkdown(title)))
	builder.WriteString(escapeMarkdown(message))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("🕒 %s\n", utils.PrettyDate(at)))

	out := builder.String()
	if len(out) > maxMessageLen {
		out = out[:maxMessageLen]
	}
	return out
}

func iconFor(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "buy"):
		return "🟢"
	case strings.Contains(lower, "sell"):
		return "🔴"
	case strings.Contains(lower, "alert"):
		return "🔔"
	case strings.Contains(lower, "fail"), strings.Contains(lower, "error"):
		return "📛"
	default:
		return "📊"
	}
}

// escapeMarkdown escapes the characters legacy Markdown mode treats as entities.
func escapeMarkdown(s string) string {
	return strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[").Replace(s)
}
