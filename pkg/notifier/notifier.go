// Package notifier delivers dashboard notifications to one or more sinks.
package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"

	"golang-stock-dashboard/pkg/utils"
)

// Notification is a (title, message) pair emitted by the dashboard core.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// New stamps a notification with a fresh id and the current exchange time.
func New(title, message string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		CreatedAt: utils.TimeNowCST(),
	}
}

// Notifier is a notification sink.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
