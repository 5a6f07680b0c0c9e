package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultCurrency       = "INR"
	defaultGatewayTimeout = 10 * time.Second
)

// VerificationResult is the outcome of a checkout-completion callback.
// Duplicate is set when the hire request was already PAID and nothing was written.
type VerificationResult struct {
	HireRequest entities.HireRequest
	Payment     entities.Payment
	Duplicate   bool
}

// IPaymentUseCase adapts the payment gateway to the hire workflow.
//
// Requested behavior:
//   - Open one gateway order per accepted, unpaid hire request.
//   - Verify the gateway signature before touching any state, then mark the request
//     paid and append the ledger row atomically.
type IPaymentUseCase interface {
	CreateOrder(ctx context.Context, caller entities.Identity, hireRequestID string) (entities.PaymentOrder, error)
	VerifyPayment(ctx context.Context, v entities.PaymentVerification) (VerificationResult, error)
	ListPayments(ctx context.Context, caller entities.Identity, hireRequestID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	hireRepo interfaces.IHireRequestRepository
	ledger   interfaces.IPaymentRepository
	escrow   IHireRequestEscrow
	gateway  interfaces.IPaymentGateway
	currency string
	timeout  time.Duration
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(hireRepo interfaces.IHireRequestRepository, ledger interfaces.IPaymentRepository, escrow IHireRequestEscrow, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{
		hireRepo: hireRepo,
		ledger:   ledger,
		escrow:   escrow,
		gateway:  gateway,
		currency: defaultCurrency,
		timeout:  defaultGatewayTimeout,
		now:      time.Now,
	}
}

// WithCurrency sets the ISO currency code sent with every order.
func (u *PaymentUseCase) WithCurrency(currency string) *PaymentUseCase {
	if c := strings.ToUpper(strings.TrimSpace(currency)); c != "" {
		u.currency = c
	}
	return u
}

// WithGatewayTimeout bounds every outbound gateway call.
func (u *PaymentUseCase) WithGatewayTimeout(d time.Duration) *PaymentUseCase {
	if d > 0 {
		u.timeout = d
	}
	return u
}

func (u *PaymentUseCase) CreateOrder(ctx context.Context, caller entities.Identity, hireRequestID string) (entities.PaymentOrder, error) {
	log.Printf("[payment][usecase] create-order start raw_hire_request_id=%q caller=%s", hireRequestID, caller.UserID)
	if err := authorizeRole(opCreateOrder, caller); err != nil {
		return entities.PaymentOrder{}, err
	}
	hireRequestID = strings.TrimSpace(hireRequestID)
	if hireRequestID == "" {
		log.Printf("[payment][usecase] invalid hire_request_id (empty)")
		return entities.PaymentOrder{}, ErrInvalidHireRequestID
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured hire_request_id=%s", hireRequestID)
		return entities.PaymentOrder{}, ErrGatewayNotConfigured
	}

	h, err := u.hireRepo.GetByID(ctx, hireRequestID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading hire request hire_request_id=%s err=%v", hireRequestID, err)
		return entities.PaymentOrder{}, infraError("load hire request", err)
	}
	if h.ID == "" {
		log.Printf("[payment][usecase] hire request not found hire_request_id=%s", hireRequestID)
		return entities.PaymentOrder{}, ErrHireRequestNotFound
	}
	if err := authorizeRecord(opCreateOrder, caller, h); err != nil {
		return entities.PaymentOrder{}, err
	}

	if h.HasOrder() && h.Status == entities.HireStatusAccepted && h.PaymentStatus == entities.PaymentStatusPending {
		log.Printf("[payment][usecase] order already attached hire_request_id=%s order_id=%s", h.ID, h.RazorpayOrderID)
		return u.paymentOrder(h), nil
	}
	if err := entities.CanApply(entities.OpAttachOrder, h); err != nil {
		log.Printf("[payment][usecase] order not allowed hire_request_id=%s status=%s payment=%s", h.ID, h.Status, h.PaymentStatus)
		return entities.PaymentOrder{}, transitionError(err)
	}

	if !entities.ValidBudget(h.Budget) {
		log.Printf("[payment][usecase] budget not chargeable hire_request_id=%s budget=%v", h.ID, h.Budget)
		return entities.PaymentOrder{}, ErrInvalidBudget
	}

	req := entities.GatewayOrderRequest{
		HireRequestID: h.ID,
		AmountMinor:   h.AmountMinorUnits(),
		Currency:      u.currency,
		Description:   fmt.Sprintf("Hire request %s", h.ID),
	}
	log.Printf("[payment][usecase] calling payment gateway hire_request_id=%s amount_minor=%d currency=%s", h.ID, req.AmountMinor, req.Currency)
	order, err := u.createGatewayOrder(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed hire_request_id=%s err=%v", h.ID, err)
		return entities.PaymentOrder{}, err
	}
	log.Printf("[payment][usecase] payment gateway success hire_request_id=%s order_id=%s", h.ID, order.OrderID)

	saved, err := u.escrow.AttachOrder(ctx, h.ID, order.OrderID)
	if err != nil {
		log.Printf("[payment][usecase] attach order failed hire_request_id=%s order_id=%s err=%v", h.ID, order.OrderID, err)
		return entities.PaymentOrder{}, err
	}
	log.Printf("[payment][usecase] create-order success hire_request_id=%s order_id=%s", saved.ID, saved.RazorpayOrderID)
	return u.paymentOrder(saved), nil
}

// createGatewayOrder runs the provider call under the configured timeout. The SDKs
// do not all honour context cancellation, so the call is raced against the deadline.
func (u *PaymentUseCase) createGatewayOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayOrder, error) {
	gctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	type result struct {
		order entities.GatewayOrder
		err   error
	}
	done := make(chan result, 1)
	go func() {
		order, err := u.gateway.CreateOrder(gctx, req)
		done <- result{order: order, err: err}
	}()

	select {
	case <-gctx.Done():
		if errors.Is(gctx.Err(), context.DeadlineExceeded) {
			return entities.GatewayOrder{}, wrapError(ErrGatewayTimeout, "", gctx.Err())
		}
		return entities.GatewayOrder{}, wrapError(ErrGateway, "order creation cancelled", gctx.Err())
	case res := <-done:
		if res.err != nil {
			if errors.Is(res.err, context.DeadlineExceeded) {
				return entities.GatewayOrder{}, wrapError(ErrGatewayTimeout, "", res.err)
			}
			return entities.GatewayOrder{}, wrapError(ErrGateway, gatewayFailureMessage(res.err), res.err)
		}
		if strings.TrimSpace(res.order.OrderID) == "" {
			return entities.GatewayOrder{}, wrapError(ErrGateway, "gateway returned an empty order id", nil)
		}
		return res.order, nil
	}
}

func (u *PaymentUseCase) paymentOrder(h entities.HireRequest) entities.PaymentOrder {
	return entities.PaymentOrder{
		OrderID:       h.RazorpayOrderID,
		KeyID:         u.gateway.PublicKey(),
		Amount:        h.AmountMinorUnits(),
		Currency:      u.currency,
		HireRequestID: h.ID,
	}
}

func (u *PaymentUseCase) VerifyPayment(ctx context.Context, v entities.PaymentVerification) (VerificationResult, error) {
	v.OrderID = strings.TrimSpace(v.OrderID)
	v.PaymentID = strings.TrimSpace(v.PaymentID)
	v.Signature = strings.TrimSpace(v.Signature)
	log.Printf("[payment][usecase] verify start order_id=%q payment_id=%q", v.OrderID, v.PaymentID)
	if v.OrderID == "" || v.PaymentID == "" || v.Signature == "" {
		return VerificationResult{}, ErrInvalidVerification
	}
	if u.gateway == nil {
		return VerificationResult{}, ErrGatewayNotConfigured
	}
	if !u.gateway.VerifySignature(v.OrderID, v.PaymentID, v.Signature) {
		log.Printf("[payment][usecase] signature mismatch order_id=%s payment_id=%s", v.OrderID, v.PaymentID)
		return VerificationResult{}, ErrInvalidSignature
	}

	h, err := u.hireRepo.GetByOrderID(ctx, v.OrderID)
	if err != nil {
		return VerificationResult{}, infraError("load hire request by order", err)
	}
	if h.ID == "" {
		log.Printf("[payment][usecase] no hire request for order order_id=%s", v.OrderID)
		return VerificationResult{}, ErrHireRequestNotFound
	}

	p := entities.Payment{
		ID:                LedgerID(v.OrderID, v.PaymentID),
		HireRequestID:     h.ID,
		RazorpayPaymentID: v.PaymentID,
		RazorpayOrderID:   v.OrderID,
		RazorpaySignature: v.Signature,
		Status:            entities.LedgerStatusSuccess,
		Amount:            h.Budget,
		CreatedAt:         u.now().UTC(),
	}
	saved, applied, err := u.escrow.MarkPaid(ctx, h.ID, p)
	if err != nil {
		log.Printf("[payment][usecase] mark paid failed hire_request_id=%s order_id=%s err=%v", h.ID, v.OrderID, err)
		return VerificationResult{}, err
	}
	if !applied {
		log.Printf("[payment][usecase] duplicate verification hire_request_id=%s order_id=%s payment_id=%s", saved.ID, v.OrderID, v.PaymentID)
		existing, err := u.ledger.GetByID(ctx, p.ID)
		if err != nil {
			log.Printf("[payment][usecase] ledger lookup failed payment_id=%s err=%v", p.ID, err)
		}
		return VerificationResult{HireRequest: saved, Payment: existing, Duplicate: true}, nil
	}
	log.Printf("[payment][usecase] verify success hire_request_id=%s payment_id=%s amount=%.2f", saved.ID, p.ID, p.Amount)
	return VerificationResult{HireRequest: saved, Payment: p}, nil
}

func (u *PaymentUseCase) ListPayments(ctx context.Context, caller entities.Identity, hireRequestID string) ([]entities.Payment, error) {
	if err := authorizeRole(opListPayments, caller); err != nil {
		return nil, err
	}
	hireRequestID = strings.TrimSpace(hireRequestID)
	if hireRequestID == "" {
		return nil, ErrInvalidHireRequestID
	}
	h, err := u.hireRepo.GetByID(ctx, hireRequestID)
	if err != nil {
		return nil, infraError("load hire request", err)
	}
	if h.ID == "" {
		return nil, ErrHireRequestNotFound
	}
	if err := authorize(opListPayments, caller, h); err != nil {
		return nil, err
	}
	out, err := u.ledger.ListByHireRequestID(ctx, h.ID)
	if err != nil {
		return nil, infraError("list payments", err)
	}
	return out, nil
}

// LedgerID derives the ledger row id from the gateway identifiers, so a callback
// delivered twice maps to the same row.
func LedgerID(orderID, paymentID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(orderID+"|"+paymentID)).String()
}

func gatewayFailureMessage(err error) string {
	switch {
	case isGatewayUnauthorized(err):
		return "payment gateway rejected the credentials"
	case isGatewayBadRequest(err):
		return "payment gateway rejected the order"
	default:
		return "order creation failed"
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bad_request") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unauthorized") || strings.Contains(msg, "authentication failed") || strings.Contains(msg, "\"status\":401")
}
