package interfaces

import (
	"context"

	"gig_escrow/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (Razorpay, Mercado Pago).
//
// CreateOrder opens an order for the escrowed amount; VerifySignature checks a
// checkout-completion callback against the provider's shared secret.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	PublicKey() string
}
