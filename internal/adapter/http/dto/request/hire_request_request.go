package request

import (
	"strings"

	"gig_escrow/internal/usecase"
)

// CreateHireRequestRequest is the body of POST /hire-requests. The client and the
// gig worker are never taken from the body: the caller comes from the token and
// the worker from the service owner.
type CreateHireRequestRequest struct {
	ServiceID         string  `json:"serviceId" binding:"required"`
	Message           string  `json:"message"`
	Budget            float64 `json:"budget" binding:"required"`
	RequestedDateTime string  `json:"requestedDateTime" binding:"required"`
}

func (r CreateHireRequestRequest) ToInput() usecase.CreateHireRequestInput {
	return usecase.CreateHireRequestInput{
		ServiceID:         strings.TrimSpace(r.ServiceID),
		Message:           strings.TrimSpace(r.Message),
		Budget:            r.Budget,
		RequestedDateTime: strings.TrimSpace(r.RequestedDateTime),
	}
}
