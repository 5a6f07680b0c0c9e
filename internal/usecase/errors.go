package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the use cases wraps exactly one of them,
// so callers classify with errors.Is(err, ErrValidation) and friends.
var (
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("authorization error")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrGateway           = errors.New("payment gateway error")
	ErrInfrastructure    = errors.New("infrastructure error")
)

// WorkflowError carries a kind plus a caller-facing message.
type WorkflowError struct {
	Kind error
	Msg  string
	Err  error
}

func (e *WorkflowError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *WorkflowError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, msg string) *WorkflowError {
	return &WorkflowError{Kind: kind, Msg: msg}
}

func wrapError(kind error, msg string, cause error) error {
	return &WorkflowError{Kind: kind, Msg: msg, Err: cause}
}

func infraError(op string, cause error) error {
	return wrapError(ErrInfrastructure, op, cause)
}

var (
	ErrInvalidHireRequestID   = newError(ErrValidation, "hire request id is required")
	ErrInvalidServiceID       = newError(ErrValidation, "service id is required")
	ErrInvalidBudget          = newError(ErrValidation, "budget must be a positive amount of at least 0.01 and within the order limit")
	ErrMissingRequestedTime   = newError(ErrValidation, "requested date and time are required")
	ErrInvalidRequestedTime   = newError(ErrValidation, "invalid date format, use ISO 8601 local date-time (e.g. 2025-06-20T15:00:00)")
	ErrRequestedTimeNotFuture = newError(ErrValidation, "requested date and time must be in the future")
	ErrInvalidOrderID         = newError(ErrValidation, "order id is required")
	ErrInvalidVerification    = newError(ErrValidation, "order id, payment id and signature are required")

	ErrMissingIdentity = newError(ErrForbidden, "caller identity is required")
	ErrRoleNotAllowed  = newError(ErrForbidden, "caller role is not allowed for this operation")
	ErrNotRequestParty = newError(ErrForbidden, "caller is not a party of this hire request")
	ErrNotServiceOwner = newError(ErrForbidden, "caller does not own this service")
	ErrTargetNotWorker = newError(ErrValidation, "target user is not a GIG_WORKER")

	ErrHireRequestNotFound = newError(ErrNotFound, "hire request not found")
	ErrServiceNotFound     = newError(ErrNotFound, "service not found")
	ErrGigWorkerNotFound   = newError(ErrNotFound, "gig worker not found")

	ErrGatewayNotConfigured = newError(ErrGateway, "payment gateway not configured")
	ErrGatewayTimeout       = newError(ErrGateway, "payment gateway timed out, retry the order")
	ErrInvalidSignature     = newError(ErrGateway, "invalid payment signature")

	ErrConcurrentUpdate = newError(ErrInvalidTransition, "hire request was modified concurrently")
)

// IsRetryable reports whether the caller may safely repeat the operation.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrGatewayTimeout)
}

// Category returns a stable identifier for the error's kind.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	case errors.Is(err, ErrForbidden):
		return "AUTHORIZATION"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrGateway):
		return "GATEWAY"
	default:
		return "INFRASTRUCTURE"
	}
}
