package response

import (
	"time"

	"gig_escrow/internal/domain/entities"
)

type HireRequestResponse struct {
	ID                       string    `json:"id"`
	ServiceID                string    `json:"serviceId"`
	GigWorkerID              string    `json:"gigWorkerId"`
	ClientID                 string    `json:"clientId"`
	Message                  string    `json:"message,omitempty"`
	Status                   string    `json:"status"`
	WorkStatus               string    `json:"workStatus,omitempty"`
	PaymentStatus            string    `json:"paymentStatus,omitempty"`
	ClientConfirmationStatus string    `json:"clientConfirmationStatus,omitempty"`
	CreatedAt                time.Time `json:"createdAt"`
	RequestedDateTime        string    `json:"requestedDateTime"`
	Budget                   float64   `json:"budget"`
	RazorpayOrderID          string    `json:"razorpayOrderId,omitempty"`
}

func FromHireRequest(h entities.HireRequest) HireRequestResponse {
	return HireRequestResponse{
		ID:                       h.ID,
		ServiceID:                h.ServiceID,
		GigWorkerID:              h.GigWorkerID,
		ClientID:                 h.ClientID,
		Message:                  h.Message,
		Status:                   string(h.Status),
		WorkStatus:               string(h.WorkStatus),
		PaymentStatus:            string(h.PaymentStatus),
		ClientConfirmationStatus: string(h.ClientConfirmationStatus),
		CreatedAt:                h.CreatedAt,
		RequestedDateTime:        h.RequestedDateTime,
		Budget:                   h.Budget,
		RazorpayOrderID:          h.RazorpayOrderID,
	}
}

// FromHireRequests never returns nil so empty lists encode as [].
func FromHireRequests(list []entities.HireRequest) []HireRequestResponse {
	out := make([]HireRequestResponse, 0, len(list))
	for _, h := range list {
		out = append(out, FromHireRequest(h))
	}
	return out
}
