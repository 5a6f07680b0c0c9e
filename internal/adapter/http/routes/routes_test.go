package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"gig_escrow/internal/adapter/http/handlers"
	"gig_escrow/internal/adapter/http/handlers/mocks"
	"gig_escrow/internal/adapter/http/middleware"
	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func denyAll(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping is public", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := NewRouter(Handlers{
			HireRequests: handlers.NewHireRequestHandler(mocks.NewMockIHireRequestUseCase(ctrl)),
			Payments:     handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl)),
			Auth:         denyAll,
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("hire requests require auth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := NewRouter(Handlers{
			HireRequests: handlers.NewHireRequestHandler(mocks.NewMockIHireRequestUseCase(ctrl)),
			Payments:     handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl)),
			Auth:         denyAll,
		})
		for _, path := range []string{"/v1/hire-requests", "/v1/hire-requests/accepted", "/v1/hire-requests/hr-1", "/v1/payments/hire-request/hr-1"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("%s: expected 401, got %d", path, w.Code)
			}
		}
	})

	t.Run("verify payment bypasses auth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pay := mocks.NewMockIPaymentUseCase(ctrl)
		pay.EXPECT().VerifyPayment(gomock.Any(), entities.PaymentVerification{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}).
			Return(usecase.VerificationResult{HireRequest: entities.HireRequest{ID: "hr-1"}}, nil)

		r := NewRouter(Handlers{
			HireRequests: handlers.NewHireRequestHandler(mocks.NewMockIHireRequestUseCase(ctrl)),
			Payments:     handlers.NewPaymentHandler(pay),
			Auth:         denyAll,
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-payment",
			bytes.NewBufferString(`{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accepted resolves to the list route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		caller := entities.Identity{UserID: "worker-1", Role: entities.RoleGigWorker}
		hire := mocks.NewMockIHireRequestUseCase(ctrl)
		hire.EXPECT().ListMine(gomock.Any(), caller, true).Return([]entities.HireRequest{}, nil)

		r := NewRouter(Handlers{
			HireRequests: handlers.NewHireRequestHandler(hire),
			Payments:     handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl)),
			Auth: func(c *gin.Context) {
				middleware.SetIdentity(c, caller)
				c.Next()
			},
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/hire-requests/accepted", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
