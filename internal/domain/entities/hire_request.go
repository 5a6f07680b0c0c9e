package entities

import (
	"math"
	"time"
)

// HireStatus is the request lifecycle marker.
//
// PENDING -> ACCEPTED | REJECTED, ACCEPTED -> COMPLETED.
type HireStatus string

const (
	HireStatusPending   HireStatus = "PENDING"
	HireStatusAccepted  HireStatus = "ACCEPTED"
	HireStatusRejected  HireStatus = "REJECTED"
	HireStatusCompleted HireStatus = "COMPLETED"
)

// WorkStatus is the worker-driven execution state. The zero value means "not started".
type WorkStatus string

const (
	WorkStatusUnset      WorkStatus = ""
	WorkStatusInProgress WorkStatus = "IN_PROGRESS"
	WorkStatusCompleted  WorkStatus = "COMPLETED"
)

// PaymentStatus is the escrow capture state of a hire request.
type PaymentStatus string

const (
	PaymentStatusUnset   PaymentStatus = ""
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// ConfirmationStatus is the client's verdict on delivered work.
type ConfirmationStatus string

const (
	ConfirmationStatusUnset     ConfirmationStatus = ""
	ConfirmationStatusPending   ConfirmationStatus = "PENDING"
	ConfirmationStatusConfirmed ConfirmationStatus = "CONFIRMED"
	ConfirmationStatusDisputed  ConfirmationStatus = "DISPUTED"
)

// RequestedDateTimeLayout is the ISO-8601 local date-time (no offset) accepted for
// requestedDateTime. Fractional seconds are optional.
const RequestedDateTimeLayout = "2006-01-02T15:04:05"

// HireRequest is one hiring negotiation between a client and a gig worker.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSIs: gigWorkerId-index, clientId-index, serviceId-index, razorpayOrderId-index
//
// Version is the optimistic concurrency stamp; every write is conditioned on it.
type HireRequest struct {
	ID                       string             `json:"id"`
	ServiceID                string             `json:"serviceId"`
	GigWorkerID              string             `json:"gigWorkerId"`
	ClientID                 string             `json:"clientId"`
	Message                  string             `json:"message,omitempty"`
	Status                   HireStatus         `json:"status"`
	WorkStatus               WorkStatus         `json:"workStatus,omitempty"`
	PaymentStatus            PaymentStatus      `json:"paymentStatus,omitempty"`
	ClientConfirmationStatus ConfirmationStatus `json:"clientConfirmationStatus,omitempty"`
	CreatedAt                time.Time          `json:"createdAt"`
	RequestedDateTime        string             `json:"requestedDateTime"`
	Budget                   float64            `json:"budget"`
	RazorpayOrderID          string             `json:"razorpayOrderId,omitempty"`
	Version                  int64              `json:"version"`
}

// IsTerminal reports whether no further transition may touch the request.
func (h HireRequest) IsTerminal() bool {
	return h.Status == HireStatusRejected || h.Status == HireStatusCompleted
}

// HasOrder reports whether a gateway order was already attached.
func (h HireRequest) HasOrder() bool {
	return h.RazorpayOrderID != ""
}

// AmountMinorUnits is the budget in the gateway's integer minor currency unit.
func (h HireRequest) AmountMinorUnits() int64 {
	return ToMinorUnits(h.Budget)
}

// MaxAmountMinorUnits caps a single order. Larger values lose float precision.
const MaxAmountMinorUnits int64 = 100_000_000_000_000

// ToMinorUnits converts a major-unit amount (e.g. rupees) into minor units (paise).
// Values outside the int64 range saturate; NaN converts to 0.
func ToMinorUnits(amount float64) int64 {
	if math.IsNaN(amount) {
		return 0
	}
	v := math.Round(amount * 100)
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	if v <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(v)
}

// ValidBudget reports whether amount converts to an order the gateway can charge.
func ValidBudget(amount float64) bool {
	m := ToMinorUnits(amount)
	return m >= 1 && m <= MaxAmountMinorUnits
}
