package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// Notifier defines the interface for a Telegram notifier.
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
}

// client is an implementation of Notifier.
type client struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	limiter *rate.Limiter
}

// NewClient creates a Telegram client that sends at most maxPerMinute messages per minute.
// A non-positive maxPerMinute defaults to 20.
func NewClient(botToken string, chatID int64, maxPerMinute int) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &client{
		bot:     bot,
		chatID:  chatID,
		limiter: NewLimiter(maxPerMinute),
	}, nil
}

// NewLimiter spaces sends evenly across a minute.
func NewLimiter(maxPerMinute int) *rate.Limiter {
	if maxPerMinute <= 0 {
		maxPerMinute = 20
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxPerMinute)), 1)
}

// SendMessage waits for the rate limiter and sends a Markdown message to the configured chat.
func (c *client) SendMessage(ctx context.Context, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := c.bot.Send(msg)
	return err
}
