package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"gig_escrow/internal/adapter/http/handlers/mocks"
	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PaymentHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/payments/create-order", asCaller(testClient), h.CreateOrder)
		return r
	}
	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-order", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing hire request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := post(newRouter(NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))), `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway timeout is retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().CreateOrder(gomock.Any(), testClient, "hr-1").Return(entities.PaymentOrder{}, usecase.ErrGatewayTimeout)

		w := post(newRouter(NewPaymentHandler(uc)), `{"hireRequestId":"hr-1"}`)
		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "GATEWAY_TIMEOUT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().CreateOrder(gomock.Any(), testClient, "hr-1").Return(entities.PaymentOrder{}, usecase.ErrGatewayNotConfigured)

		w := post(newRouter(NewPaymentHandler(uc)), `{"hireRequestId":"hr-1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().CreateOrder(gomock.Any(), testClient, "hr-1").Return(entities.PaymentOrder{
			OrderID: "order_1", KeyID: "rzp_test", Amount: 50000, Currency: "INR", HireRequestID: "hr-1",
		}, nil)

		w := post(newRouter(NewPaymentHandler(uc)), `{"hireRequestId":"hr-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["orderId"] != "order_1" || body["keyId"] != "rzp_test" || body["amount"] != float64(50000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const payload = `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`
	verification := entities.PaymentVerification{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}

	newRouter := func(h *PaymentHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/payments/verify-payment", h.VerifyPayment)
		return r
	}
	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify-payment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("incomplete callback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := post(newRouter(NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))), `{"razorpay_order_id":"order_1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().VerifyPayment(gomock.Any(), verification).Return(usecase.VerificationResult{}, usecase.ErrInvalidSignature)

		w := post(newRouter(NewPaymentHandler(uc)), payload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_SIGNATURE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("duplicate is success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().VerifyPayment(gomock.Any(), verification).Return(usecase.VerificationResult{
			HireRequest: entities.HireRequest{ID: "hr-1", PaymentStatus: entities.PaymentStatusPaid},
			Payment:     entities.Payment{ID: "pay-1"},
			Duplicate:   true,
		}, nil)

		w := post(newRouter(NewPaymentHandler(uc)), payload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] != "Payment verified successfully." || body["duplicate"] != true || body["hireRequestId"] != "hr-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	uc.EXPECT().ListPayments(gomock.Any(), testClient, "hr-1").Return([]entities.Payment{{ID: "pay-1", HireRequestID: "hr-1", Status: entities.LedgerStatusSuccess}}, nil)

	r := gin.New()
	r.GET("/v1/payments/hire-request/:id", asCaller(testClient), NewPaymentHandler(uc).ListPayments)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/hire-request/hr-1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"id":"pay-1"`)) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestWorkflowMessage(t *testing.T) {
	if got := workflowMessage(usecase.ErrGatewayTimeout); got != "payment gateway timed out, retry the order" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := mapWorkflowError(usecase.ErrInvalidBudget); got.HTTPStatus != http.StatusBadRequest || got.Message != "budget must be a positive amount of at least 0.01 and within the order limit" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}
