package request

import (
	"strings"

	"gig_escrow/internal/domain/entities"
)

type CreateOrderRequest struct {
	HireRequestID string `json:"hireRequestId" binding:"required"`
}

// VerifyPaymentRequest is the checkout completion callback, named the way the
// gateway's checkout widget posts it.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

func (r VerifyPaymentRequest) ToVerification() entities.PaymentVerification {
	return entities.PaymentVerification{
		OrderID:   strings.TrimSpace(r.RazorpayOrderID),
		PaymentID: strings.TrimSpace(r.RazorpayPaymentID),
		Signature: strings.TrimSpace(r.RazorpaySignature),
	}
}
