package notifier

import (
	"context"

	"golang-stock-dashboard/pkg/telegram"
)

// TelegramNotifier forwards notifications to a Telegram chat.
type TelegramNotifier struct {
	client telegram.Notifier
}

func NewTelegramNotifier(client telegram.Notifier) *TelegramNotifier {
	return &TelegramNotifier{client: client}
}

func (n *TelegramNotifier) Notify(ctx context.Context, notification Notification) error {
	return n.client.SendMessage(ctx, telegram.FormatNotification(notification.Title, notification.Message, notification.CreatedAt))
}
