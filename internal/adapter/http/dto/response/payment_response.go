package response

import (
	"time"

	"gig_escrow/internal/domain/entities"
)

const verifiedMessage = "Payment verified successfully."

type PaymentOrderResponse struct {
	OrderID       string `json:"orderId"`
	KeyID         string `json:"keyId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	HireRequestID string `json:"hireRequestId"`
}

type PaymentResponse struct {
	ID                string    `json:"id"`
	HireRequestID     string    `json:"hireRequestId"`
	RazorpayPaymentID string    `json:"razorpayPaymentId"`
	RazorpayOrderID   string    `json:"razorpayOrderId"`
	Status            string    `json:"status"`
	Amount            float64   `json:"amount"`
	CreatedAt         time.Time `json:"createdAt"`
}

type VerifyPaymentResponse struct {
	Message       string `json:"message"`
	HireRequestID string `json:"hireRequestId"`
	PaymentID     string `json:"paymentId,omitempty"`
	Duplicate     bool   `json:"duplicate"`
}

func FromPaymentOrder(o entities.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		OrderID:       o.OrderID,
		KeyID:         o.KeyID,
		Amount:        o.Amount,
		Currency:      o.Currency,
		HireRequestID: o.HireRequestID,
	}
}

// FromPayment leaves the signature out; it is stored for audit only.
func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		HireRequestID:     p.HireRequestID,
		RazorpayPaymentID: p.RazorpayPaymentID,
		RazorpayOrderID:   p.RazorpayOrderID,
		Status:            string(p.Status),
		Amount:            p.Amount,
		CreatedAt:         p.CreatedAt,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}

func NewVerifyPaymentResponse(hireRequestID, paymentID string, duplicate bool) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Message:       verifiedMessage,
		HireRequestID: hireRequestID,
		PaymentID:     paymentID,
		Duplicate:     duplicate,
	}
}
