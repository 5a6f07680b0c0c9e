package payments

import (
	"context"
	"log"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const mockPublicKey = "mock_key"

// MockGateway never leaves the process. Orders get random ids and signatures are
// checked against a local secret, so a test client can sign its own callbacks.
type MockGateway struct {
	secret string
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway(secret string) *MockGateway {
	log.Printf("[payment][gateway] mock mode enabled")
	return &MockGateway{secret: secret}
}

func (g *MockGateway) CreateOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return entities.GatewayOrder{}, err
	}
	id := "order_mock_" + uuid.NewString()[:8]
	log.Printf("[payment][gateway] mock create-order success order_id=%s receipt=%s", id, req.HireRequestID)
	return entities.GatewayOrder{OrderID: id, Amount: req.AmountMinor, Currency: req.Currency}, nil
}

func (g *MockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(g.secret, orderID, paymentID, signature)
}

func (g *MockGateway) PublicKey() string {
	return mockPublicKey
}
