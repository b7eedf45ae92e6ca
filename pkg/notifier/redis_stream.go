package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"

	redisPkg "golang-stock-dashboard/pkg/redis"
)

// RedisStreamNotifier appends notifications to a capped redis stream so other
// processes can consume them.
type RedisStreamNotifier struct {
	client *redisPkg.Client
	stream string
	maxLen int64
}

func NewRedisStreamNotifier(client *redisPkg.Client, stream string, maxLen int64) *RedisStreamNotifier {
	return &RedisStreamNotifier{client: client, stream: stream, maxLen: maxLen}
}

func (n *RedisStreamNotifier) Notify(ctx context.Context, notification Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	args := &goRedis.XAddArgs{
		Stream: n.stream,
		Values: map[string]interface{}{"payload": payload},
	}
	if n.maxLen > 0 {
		args.MaxLen = n.maxLen
		args.Approx = true
	}
	if err := n.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to stream %s: %w", n.stream, err)
	}
	return nil
}
