package interfaces

import (
	"context"

	"gig_escrow/internal/domain/entities"
)

// IPaymentRepository reads the append-only payment ledger. Rows are written together
// with the hire request update (see IHireRequestRepository.UpdateWithPayment).
type IPaymentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByHireRequestID(ctx context.Context, hireRequestID string) ([]entities.Payment, error)
}
