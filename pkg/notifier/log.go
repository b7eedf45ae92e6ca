package notifier

import (
	"context"

	"golang-stock-dashboard/pkg/logger"
)

// LogNotifier writes every notification to the service log.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(ctx context.Context, notification Notification) error {
	n.logger.InfoContext(ctx, "Notification",
		logger.StringField("id", notification.ID),
		logger.StringField("title", notification.Title),
		logger.StringField("message", notification.Message),
	)
	return nil
}
