package entities

import "time"

// LedgerStatus is the outcome recorded on a Payment ledger row.
type LedgerStatus string

const (
	LedgerStatusSuccess LedgerStatus = "success"
	LedgerStatusFailed  LedgerStatus = "failed"
)

// Payment is an append-only ledger entry written once per verified gateway payment.
//
// Storage model (DynamoDB):
//   - PK: id (uuid v5 of order id and payment id, so duplicate callbacks collide)
//   - GSI: hireRequestId-index
//
// RazorpaySignature is kept for audit only; it is never re-validated after write.
type Payment struct {
	ID                string       `json:"id"`
	HireRequestID     string       `json:"hireRequestId"`
	RazorpayPaymentID string       `json:"razorpayPaymentId"`
	RazorpayOrderID   string       `json:"razorpayOrderId"`
	RazorpaySignature string       `json:"razorpaySignature"`
	Status            LedgerStatus `json:"status"`
	Amount            float64      `json:"amount"`
	CreatedAt         time.Time    `json:"createdAt"`
}

// GatewayOrderRequest is what the gateway needs to open an order.
type GatewayOrderRequest struct {
	HireRequestID string
	AmountMinor   int64
	Currency      string
	Description   string
}

// GatewayOrder is the gateway's answer to an order request.
type GatewayOrder struct {
	OrderID  string
	Amount   int64
	Currency string
}

// PaymentOrder is returned to the client for its checkout step.
type PaymentOrder struct {
	OrderID       string `json:"orderId"`
	KeyID         string `json:"keyId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	HireRequestID string `json:"hireRequestId"`
}

// PaymentVerification is the gateway-originated checkout completion callback.
type PaymentVerification struct {
	OrderID   string
	PaymentID string
	Signature string
}
