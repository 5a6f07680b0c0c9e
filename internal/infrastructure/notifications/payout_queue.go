package notifications

import (
	"context"
	"encoding/json"
	"log"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const DefaultPayoutQueueKey = "payout_queue"

// PayoutQueue pushes payout events onto a Redis list for the settlement worker.
type PayoutQueue struct {
	client *redis.Client
	key    string
}

var _ interfaces.IPayoutTrigger = (*PayoutQueue)(nil)

func NewPayoutQueue(client *redis.Client, key string) *PayoutQueue {
	if key == "" {
		key = DefaultPayoutQueueKey
	}
	return &PayoutQueue{client: client, key: key}
}

func (q *PayoutQueue) TriggerPayout(ctx context.Context, e entities.PayoutEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return err
	}
	log.Printf("[payout][trigger] PAYOUT TRIGGERED hire_request_id=%s gig_worker_id=%s amount=%.2f queue=%s", e.HireRequestID, e.GigWorkerID, e.Amount, q.key)
	return nil
}
