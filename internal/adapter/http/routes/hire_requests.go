package routes

import (
	"gig_escrow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHireRequests = "/hire-requests"
	PathPayments     = "/payments"
)

func addHireRequestRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.HireRequestHandler) {
	hire := rg.Group(PathHireRequests, auth)
	{
		hire.POST("", h.CreateHireRequest)
		hire.GET("", h.ListMine)
		// Static segments are registered before /:id.
		hire.GET("/accepted", h.ListAccepted)
		hire.GET("/service/:serviceId", h.ListByService)
		hire.GET("/:id", h.GetHireRequest)
		hire.POST("/:id/accept", h.AcceptHireRequest)
		hire.POST("/:id/reject", h.RejectHireRequest)
		hire.POST("/:id/complete", h.CompleteWork)
		hire.POST("/:id/confirm", h.ConfirmCompletion)
		hire.POST("/:id/dispute", h.DisputeCompletion)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		// The checkout callback authenticates through the gateway signature.
		payments.POST("/verify-payment", h.VerifyPayment)
		payments.POST("/create-order", auth, h.CreateOrder)
		payments.GET("/hire-request/:id", auth, h.ListPayments)
	}
}
