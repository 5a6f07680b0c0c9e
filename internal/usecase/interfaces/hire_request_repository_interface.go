package interfaces

import (
	"context"
	"errors"

	"gig_escrow/internal/domain/entities"
)

// ErrVersionConflict is returned by a conditional write when the stored version
// no longer matches the version the caller read.
var ErrVersionConflict = errors.New("hire request version conflict")

// IHireRequestRepository abstracts DynamoDB persistence for HireRequest.
//
// Lookups return a zero-value HireRequest (empty ID) and a nil error when nothing matches.
// Writes are conditional:
//   - Create fails if the id already exists
//   - Update and UpdateWithPayment succeed only while the stored version equals expectedVersion,
//     and store the record with version expectedVersion+1
type IHireRequestRepository interface {
	Create(ctx context.Context, h entities.HireRequest) (entities.HireRequest, error)
	GetByID(ctx context.Context, id string) (entities.HireRequest, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.HireRequest, error)
	ListByGigWorkerID(ctx context.Context, gigWorkerID string) ([]entities.HireRequest, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.HireRequest, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.HireRequest, error)
	Update(ctx context.Context, h entities.HireRequest, expectedVersion int64) (entities.HireRequest, error)
	UpdateWithPayment(ctx context.Context, h entities.HireRequest, expectedVersion int64, p entities.Payment) (entities.HireRequest, error)
}
