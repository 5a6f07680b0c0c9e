package handlers

import (
	"log"
	"net/http"

	request "gig_escrow/internal/adapter/http/dto/request"
	response "gig_escrow/internal/adapter/http/dto/response"
	"gig_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the escrow checkout: order creation and the gateway callback.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateOrder opens (or reuses) the gateway order for an accepted hire request.
//
// @Summary  Create a payment order
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    body  body      request.CreateOrderRequest  true  "Hire request to pay"
// @Success  200   {object}  response.PaymentOrderResponse
// @Failure  409   {object}  pkg.HTTPError
// @Failure  502   {object}  pkg.HTTPError
// @Failure  504   {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid create-order payload caller=%s err=%v", who.UserID, err)
		writeError(c, errInvalidPayload)
		return
	}
	log.Printf("[payment][handler] create-order start hire_request_id=%s caller=%s", payload.HireRequestID, who.UserID)

	order, err := h.usecase.CreateOrder(c.Request.Context(), who, payload.HireRequestID)
	if err != nil {
		log.Printf("[payment][handler] create-order failed hire_request_id=%s err=%v retryable=%t", payload.HireRequestID, err, usecase.IsRetryable(err))
		writeError(c, mapWorkflowError(err))
		return
	}
	log.Printf("[payment][handler] create-order success hire_request_id=%s order_id=%s", order.HireRequestID, order.OrderID)
	c.JSON(http.StatusOK, response.FromPaymentOrder(order))
}

// VerifyPayment is called by the checkout widget; it carries no bearer token and
// is trusted only through the gateway signature.
//
// @Summary  Verify a completed checkout
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    body  body      request.VerifyPaymentRequest  true  "Gateway callback"
// @Success  200   {object}  response.VerifyPaymentResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /payments/verify-payment [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid verify payload err=%v", err)
		writeError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.VerifyPayment(c.Request.Context(), payload.ToVerification())
	if err != nil {
		log.Printf("[payment][handler] verify failed order_id=%s err=%v", payload.RazorpayOrderID, err)
		writeError(c, mapWorkflowError(err))
		return
	}
	log.Printf("[payment][handler] verify success hire_request_id=%s duplicate=%t", res.HireRequest.ID, res.Duplicate)
	c.JSON(http.StatusOK, response.NewVerifyPaymentResponse(res.HireRequest.ID, res.Payment.ID, res.Duplicate))
}

// @Summary  List ledger entries of a hire request
// @Tags     payments
// @Produce  json
// @Param    id   path     string  true  "Hire request id"
// @Success  200  {array}  response.PaymentResponse
// @Security BearerAuth
// @Router   /payments/hire-request/{id} [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListPayments(c.Request.Context(), who, c.Param("id"))
	if err != nil {
		writeError(c, mapWorkflowError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}
