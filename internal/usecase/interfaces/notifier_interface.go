package interfaces

import (
	"context"

	"gig_escrow/internal/domain/entities"
)

// INotifier delivers one-line notifications. Send is fire-and-forget: it must not
// block on delivery and has no error to report.
type INotifier interface {
	Send(ctx context.Context, n entities.Notification)
}

// IPayoutTrigger records that funds held for a hire request may be released.
type IPayoutTrigger interface {
	TriggerPayout(ctx context.Context, e entities.PayoutEvent) error
}
