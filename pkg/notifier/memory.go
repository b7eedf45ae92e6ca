package notifier

import (
	"context"
	"sync"
)

// MemoryNotifier keeps the most recent notifications for the API to serve.
type MemoryNotifier struct {
	mu    sync.RWMutex
	items []Notification
	size  int
}

// NewMemoryNotifier keeps at most size notifications; older ones are dropped first.
func NewMemoryNotifier(size int) *MemoryNotifier {
	if size <= 0 {
		size = 50
	}
	return &MemoryNotifier{size: size}
}

func (n *MemoryNotifier) Notify(_ context.Context, notification Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, notification)
	if len(n.items) > n.size {
		n.items = append([]Notification(nil), n.items[len(n.items)-n.size:]...)
	}
	return nil
}

// Recent returns up to limit notifications, newest first. A non-positive limit returns all.
func (n *MemoryNotifier) Recent(limit int) []Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if limit <= 0 || limit > len(n.items) {
		limit = len(n.items)
	}
	out := make([]Notification, 0, limit)
	for i := len(n.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, n.items[i])
	}
	return out
}

// Clear drops every kept notification.
func (n *MemoryNotifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = nil
}
