package notifications

import (
	"context"
	"encoding/json"

	"gig_escrow/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

const ChannelPrefix = "notifications:"

// ChannelFor is the pub/sub channel a user's clients subscribe to.
func ChannelFor(userID string) string {
	return ChannelPrefix + userID
}

type RedisPublisher struct {
	client *redis.Client
}

var _ Publisher = (*RedisPublisher)(nil)

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, n entities.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, ChannelFor(n.ToUserID), payload).Err()
}
