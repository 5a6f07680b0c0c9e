package entities

import (
	"errors"
	"fmt"
)

// Operation names one mutating step of the hire workflow.
type Operation string

const (
	OpAccept         Operation = "accept"
	OpReject         Operation = "reject"
	OpAttachOrder    Operation = "attach-order"
	OpMarkPaid       Operation = "mark-paid"
	OpWorkerComplete Operation = "worker-complete"
	OpClientConfirm  Operation = "client-confirm"
	OpClientDispute  Operation = "client-dispute"
)

var (
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrTransitionRejected = errors.New("transition not allowed")
	ErrInvariantViolation = errors.New("hire request invariant violated")
)

// TransitionError reports which guard rejected an operation.
type TransitionError struct {
	Op     Operation
	Reason string
}

func (e *TransitionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *TransitionError) Unwrap() error { return ErrTransitionRejected }

type transition struct {
	guard  func(h HireRequest) string
	effect func(h *HireRequest)
}

// transitions is the complete table of legal mutations over
// (status, workStatus, paymentStatus, clientConfirmationStatus).
// A guard returns the empty string when the operation may proceed.
var transitions = map[Operation]transition{
	OpAccept: {
		guard: func(h HireRequest) string {
			if h.Status != HireStatusPending {
				return "hire request is not in PENDING state"
			}
			return ""
		},
		effect: func(h *HireRequest) {
			h.Status = HireStatusAccepted
			h.PaymentStatus = PaymentStatusPending
			h.ClientConfirmationStatus = ConfirmationStatusPending
		},
	},
	OpReject: {
		guard: func(h HireRequest) string {
			if h.Status != HireStatusPending {
				return "hire request is not in PENDING state"
			}
			return ""
		},
		effect: func(h *HireRequest) {
			h.Status = HireStatusRejected
		},
	},
	OpAttachOrder: {
		guard: func(h HireRequest) string {
			if h.Status != HireStatusAccepted || h.PaymentStatus != PaymentStatusPending {
				return "payment can only be initiated for an accepted request with a pending payment"
			}
			if h.HasOrder() {
				return "a gateway order is already attached"
			}
			return ""
		},
	},
	OpMarkPaid: {
		guard: func(h HireRequest) string {
			if h.Status != HireStatusAccepted || h.PaymentStatus != PaymentStatusPending {
				return "payment is not pending on an accepted request"
			}
			return ""
		},
		effect: func(h *HireRequest) {
			h.PaymentStatus = PaymentStatusPaid
			h.WorkStatus = WorkStatusInProgress
		},
	},
	OpWorkerComplete: {
		guard: func(h HireRequest) string {
			if h.PaymentStatus != PaymentStatusPaid || h.WorkStatus != WorkStatusInProgress {
				return "work cannot be completed as it is not paid and in progress"
			}
			return ""
		},
		effect: func(h *HireRequest) {
			h.WorkStatus = WorkStatusCompleted
		},
	},
	OpClientConfirm: {
		guard: clientVerdictGuard,
		effect: func(h *HireRequest) {
			h.ClientConfirmationStatus = ConfirmationStatusConfirmed
			h.Status = HireStatusCompleted
		},
	},
	OpClientDispute: {
		guard: clientVerdictGuard,
		effect: func(h *HireRequest) {
			h.ClientConfirmationStatus = ConfirmationStatusDisputed
		},
	},
}

func clientVerdictGuard(h HireRequest) string {
	if h.WorkStatus != WorkStatusCompleted {
		return "work must be marked as COMPLETED by the worker first"
	}
	if h.ClientConfirmationStatus != ConfirmationStatusPending {
		return "completion was already confirmed or disputed"
	}
	return ""
}

// CanApply checks the guard of op against h without mutating it.
func CanApply(op Operation, h HireRequest) error {
	t, ok := transitions[op]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	if h.IsTerminal() {
		return &TransitionError{Op: op, Reason: fmt.Sprintf("hire request is %s and can no longer change", h.Status)}
	}
	if reason := t.guard(h); reason != "" {
		return &TransitionError{Op: op, Reason: reason}
	}
	return nil
}

// Apply runs op against a copy of h and returns the result. h is never modified.
// The result is checked against the record invariants before it is returned.
func Apply(op Operation, h HireRequest) (HireRequest, error) {
	if err := CanApply(op, h); err != nil {
		return h, err
	}
	next := h
	if effect := transitions[op].effect; effect != nil {
		effect(&next)
	}
	if err := next.CheckInvariants(); err != nil {
		return h, err
	}
	return next, nil
}

// CheckInvariants validates the cross-axis rules of the record.
func (h HireRequest) CheckInvariants() error {
	if (h.WorkStatus == WorkStatusInProgress || h.WorkStatus == WorkStatusCompleted) && h.PaymentStatus != PaymentStatusPaid {
		return fmt.Errorf("%w: workStatus=%s requires paymentStatus=PAID", ErrInvariantViolation, h.WorkStatus)
	}
	if h.Status == HireStatusCompleted && (h.WorkStatus != WorkStatusCompleted || h.ClientConfirmationStatus != ConfirmationStatusConfirmed) {
		return fmt.Errorf("%w: status=COMPLETED requires completed and confirmed work", ErrInvariantViolation)
	}
	return nil
}
