package handlers

import (
	"errors"
	"net/http"

	"gig_escrow/internal/adapter/http/middleware"
	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase"
	"gig_escrow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request payload", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
)

func mapWorkflowError(err error) *pkg.AppError {
	msg := workflowMessage(err)
	switch {
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", msg, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayTimeout):
		return pkg.NewDomainError("GATEWAY_TIMEOUT", msg, err, http.StatusGatewayTimeout)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", msg, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", msg, http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", msg, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", msg, http.StatusConflict)
	case errors.Is(err, usecase.ErrGateway):
		return pkg.NewDomainError("GATEWAY_ERROR", msg, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// workflowMessage returns the caller-facing part of a workflow error, never the cause.
func workflowMessage(err error) string {
	var we *usecase.WorkflowError
	if !errors.As(err, &we) {
		return err.Error()
	}
	if we.Msg != "" {
		return we.Msg
	}
	var kind *usecase.WorkflowError
	if errors.As(we.Kind, &kind) && kind.Msg != "" {
		return kind.Msg
	}
	return we.Kind.Error()
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func caller(c *gin.Context) (entities.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
	}
	return id, ok
}
