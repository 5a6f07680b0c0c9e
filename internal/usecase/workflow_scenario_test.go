package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"
)

// memStore is a versioned in-memory store that behaves like the conditional writes
// of the DynamoDB repositories.
type memStore struct {
	mu       sync.Mutex
	hires    map[string]entities.HireRequest
	payments map[string]entities.Payment
}

func newMemStore() *memStore {
	return &memStore{hires: map[string]entities.HireRequest{}, payments: map[string]entities.Payment{}}
}

func (s *memStore) Create(_ context.Context, h entities.HireRequest) (entities.HireRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hires[h.ID]; ok {
		return entities.HireRequest{}, errors.New("duplicate id")
	}
	s.hires[h.ID] = h
	return h, nil
}

func (s *memStore) GetByID(_ context.Context, id string) (entities.HireRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hires[id], nil
}

func (s *memStore) GetByOrderID(_ context.Context, orderID string) (entities.HireRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hires {
		if h.RazorpayOrderID == orderID {
			return h, nil
		}
	}
	return entities.HireRequest{}, nil
}

func (s *memStore) list(match func(entities.HireRequest) bool) []entities.HireRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.HireRequest
	for _, h := range s.hires {
		if match(h) {
			out = append(out, h)
		}
	}
	return out
}

func (s *memStore) ListByGigWorkerID(_ context.Context, id string) ([]entities.HireRequest, error) {
	return s.list(func(h entities.HireRequest) bool { return h.GigWorkerID == id }), nil
}

func (s *memStore) ListByClientID(_ context.Context, id string) ([]entities.HireRequest, error) {
	return s.list(func(h entities.HireRequest) bool { return h.ClientID == id }), nil
}

func (s *memStore) ListByServiceID(_ context.Context, id string) ([]entities.HireRequest, error) {
	return s.list(func(h entities.HireRequest) bool { return h.ServiceID == id }), nil
}

func (s *memStore) Update(_ context.Context, h entities.HireRequest, expected int64) (entities.HireRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putLocked(h, expected)
}

func (s *memStore) UpdateWithPayment(_ context.Context, h entities.HireRequest, expected int64, p entities.Payment) (entities.HireRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[p.ID]; ok {
		return entities.HireRequest{}, interfaces.ErrVersionConflict
	}
	saved, err := s.putLocked(h, expected)
	if err != nil {
		return entities.HireRequest{}, err
	}
	s.payments[p.ID] = p
	return saved, nil
}

func (s *memStore) putLocked(h entities.HireRequest, expected int64) (entities.HireRequest, error) {
	cur, ok := s.hires[h.ID]
	if !ok || cur.Version != expected {
		return entities.HireRequest{}, interfaces.ErrVersionConflict
	}
	h.Version = expected + 1
	s.hires[h.ID] = h
	return h, nil
}

type memLedger struct{ store *memStore }

func (l memLedger) GetByID(_ context.Context, id string) (entities.Payment, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return l.store.payments[id], nil
}

func (l memLedger) ListByHireRequestID(_ context.Context, id string) ([]entities.Payment, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	var out []entities.Payment
	for _, p := range l.store.payments {
		if p.HireRequestID == id {
			out = append(out, p)
		}
	}
	return out, nil
}

type memDirectory struct {
	users    map[string]entities.User
	services map[string]entities.GigService
}

func (d memDirectory) GetUserByID(_ context.Context, id string) (entities.User, error) {
	return d.users[id], nil
}

func (d memDirectory) GetUserByEmail(_ context.Context, email string) (entities.User, error) {
	for _, u := range d.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (d memDirectory) GetServiceByID(_ context.Context, id string) (entities.GigService, error) {
	return d.services[id], nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []entities.Notification
}

func (r *recordingNotifier) Send(_ context.Context, n entities.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) contents() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, n := range r.sent {
		out = append(out, n.Content)
	}
	return out
}

type recordingPayouts struct {
	mu     sync.Mutex
	events []entities.PayoutEvent
}

func (r *recordingPayouts) TriggerPayout(_ context.Context, e entities.PayoutEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// fakeGateway accepts signatures of the form "sig:<order>|<payment>".
type fakeGateway struct {
	mu     sync.Mutex
	orders int
}

func (g *fakeGateway) CreateOrder(_ context.Context, req entities.GatewayOrderRequest) (entities.GatewayOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.orders++
	return entities.GatewayOrder{OrderID: "order_" + req.HireRequestID, Amount: req.AmountMinor, Currency: req.Currency}, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == "sig:"+orderID+"|"+paymentID
}

func (g *fakeGateway) PublicKey() string { return "rzp_test_key" }

type workflowFixture struct {
	store    *memStore
	notifier *recordingNotifier
	payouts  *recordingPayouts
	gateway  *fakeGateway
	hires    *HireRequestUseCase
	payments *PaymentUseCase
}

func newWorkflowFixture() workflowFixture {
	store := newMemStore()
	dir := memDirectory{
		users: map[string]entities.User{
			"client-1": {ID: "client-1", Name: "Alice", Email: "alice@example.com", Role: entities.RoleClient},
			"worker-1": {ID: "worker-1", Name: "Bob", Email: "bob@example.com", Role: entities.RoleGigWorker},
		},
		services: map[string]entities.GigService{"svc-1": testService},
	}
	f := workflowFixture{
		store:    store,
		notifier: &recordingNotifier{},
		payouts:  &recordingPayouts{},
		gateway:  &fakeGateway{},
	}
	f.hires = NewHireRequestUseCase(store, dir, f.notifier, f.payouts).
		WithClock(func() time.Time { return testNow }, time.UTC)
	f.payments = NewPaymentUseCase(store, memLedger{store: store}, f.hires, f.gateway)
	return f
}

func (f workflowFixture) create(t *testing.T) entities.HireRequest {
	t.Helper()
	h, err := f.hires.Create(context.Background(), testClient, CreateHireRequestInput{
		ServiceID:         "svc-1",
		Message:           "Need a logo",
		Budget:            500,
		RequestedDateTime: "2025-06-20T15:00:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return h
}

func TestWorkflow_HappyPath(t *testing.T) {
	f := newWorkflowFixture()
	ctx := context.Background()
	h := f.create(t)

	if _, err := f.hires.Accept(ctx, testWorker, h.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	order, err := f.payments.CreateOrder(ctx, testClient, h.ID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.Amount != 50000 || order.Currency != "INR" || order.KeyID != "rzp_test_key" {
		t.Fatalf("unexpected order: %+v", order)
	}

	res, err := f.payments.VerifyPayment(ctx, entities.PaymentVerification{
		OrderID:   order.OrderID,
		PaymentID: "pay_1",
		Signature: "sig:" + order.OrderID + "|pay_1",
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res.HireRequest.PaymentStatus != entities.PaymentStatusPaid || res.HireRequest.WorkStatus != entities.WorkStatusInProgress {
		t.Fatalf("unexpected state after payment: %+v", res.HireRequest)
	}

	if _, err := f.hires.CompleteWork(ctx, testWorker, h.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	final, err := f.hires.ConfirmCompletion(ctx, testClient, h.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if final.Status != entities.HireStatusCompleted || final.ClientConfirmationStatus != entities.ConfirmationStatusConfirmed {
		t.Fatalf("unexpected final state: %+v", final)
	}
	if err := final.CheckInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}

	ledger, _ := f.payments.ListPayments(ctx, testClient, h.ID)
	if len(ledger) != 1 || ledger[0].Amount != 500 || ledger[0].Status != entities.LedgerStatusSuccess {
		t.Fatalf("unexpected ledger: %+v", ledger)
	}
	if len(f.payouts.events) != 1 {
		t.Fatalf("expected one payout event, got %d", len(f.payouts.events))
	}

	want := []string{
		"You have a new hire request from Alice for your service: 'Logo design'",
		"Your hire request for service 'Logo design' has been accepted! Please complete the payment to begin the work.",
		"Payment received from Alice! You can now begin work.",
		"The work for your hire request 'Logo design' has been marked as complete. Please review and confirm to release the payment.",
		"The client has confirmed completion for your service 'Logo design'. The payment is being processed.",
	}
	got := f.notifier.contents()
	if len(got) != len(want) {
		t.Fatalf("expected %d notifications, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("notification %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestWorkflow_InvalidSignatureChangesNothing(t *testing.T) {
	f := newWorkflowFixture()
	ctx := context.Background()
	h := f.create(t)
	if _, err := f.hires.Accept(ctx, testWorker, h.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	order, err := f.payments.CreateOrder(ctx, testClient, h.ID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	before, _ := f.store.GetByID(ctx, h.ID)

	_, err = f.payments.VerifyPayment(ctx, entities.PaymentVerification{OrderID: order.OrderID, PaymentID: "pay_1", Signature: "forged"})
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	after, _ := f.store.GetByID(ctx, h.ID)
	if before != after {
		t.Fatalf("record changed: before=%+v after=%+v", before, after)
	}
	if len(f.store.payments) != 0 {
		t.Fatalf("expected empty ledger")
	}
}

func TestWorkflow_CreateOrderTwiceReusesOrder(t *testing.T) {
	f := newWorkflowFixture()
	ctx := context.Background()
	h := f.create(t)
	if _, err := f.hires.Accept(ctx, testWorker, h.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	first, err := f.payments.CreateOrder(ctx, testClient, h.ID)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := f.payments.CreateOrder(ctx, testClient, h.ID)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.OrderID != second.OrderID || f.gateway.orders != 1 {
		t.Fatalf("expected one gateway order, got %d (%s vs %s)", f.gateway.orders, first.OrderID, second.OrderID)
	}
}

func TestWorkflow_ConcurrentAcceptAndReject(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newWorkflowFixture()
		h := f.create(t)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, errs[0] = f.hires.Accept(context.Background(), testWorker, h.ID)
		}()
		go func() {
			defer wg.Done()
			_, errs[1] = f.hires.Reject(context.Background(), testWorker, h.ID)
		}()
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case !errors.Is(err, ErrInvalidTransition):
				t.Fatalf("loser must see an invalid transition, got %v", err)
			}
		}
		if succeeded != 1 {
			t.Fatalf("expected exactly one winner, got %d (%v)", succeeded, errs)
		}

		final, _ := f.store.GetByID(context.Background(), h.ID)
		if final.Version != 2 {
			t.Fatalf("expected one committed transition, got version %d", final.Version)
		}
		if final.Status == entities.HireStatusRejected && final.PaymentStatus != "" {
			t.Fatalf("rejected request carries payment state: %+v", final)
		}
	}
}

func TestWorkflow_ConcurrentAccepts(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newWorkflowFixture()
		h := f.create(t)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for n := range errs {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, errs[n] = f.hires.Accept(context.Background(), testWorker, h.ID)
			}(n)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case !errors.Is(err, ErrInvalidTransition):
				t.Fatalf("loser must see an invalid transition, got %v", err)
			}
		}
		if succeeded != 1 {
			t.Fatalf("expected exactly one winner, got %d (%v)", succeeded, errs)
		}

		final, _ := f.store.GetByID(context.Background(), h.ID)
		if final.Status != entities.HireStatusAccepted || final.Version != 2 {
			t.Fatalf("expected one committed accept, got status=%s version=%d", final.Status, final.Version)
		}
	}
}

func TestWorkflow_ConcurrentVerifyWritesOneLedgerRow(t *testing.T) {
	f := newWorkflowFixture()
	ctx := context.Background()
	h := f.create(t)
	if _, err := f.hires.Accept(ctx, testWorker, h.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	order, err := f.payments.CreateOrder(ctx, testClient, h.ID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	v := entities.PaymentVerification{OrderID: order.OrderID, PaymentID: "pay_1", Signature: "sig:" + order.OrderID + "|pay_1"}

	const callbacks = 5
	var wg sync.WaitGroup
	results := make([]VerificationResult, callbacks)
	errs := make([]error, callbacks)
	for i := 0; i < callbacks; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.payments.VerifyPayment(ctx, v)
		}(i)
	}
	wg.Wait()

	applied := 0
	for i := range results {
		if errs[i] != nil {
			t.Fatalf("callback %d: unexpected error: %v", i, errs[i])
		}
		if !results[i].Duplicate {
			applied++
		}
	}
	if applied != 1 {
		t.Fatalf("expected exactly one applied verification, got %d", applied)
	}
	if len(f.store.payments) != 1 {
		t.Fatalf("expected one ledger row, got %d", len(f.store.payments))
	}
}

func TestWorkflow_PastDatePersistsNothing(t *testing.T) {
	f := newWorkflowFixture()
	_, err := f.hires.Create(context.Background(), testClient, CreateHireRequestInput{
		ServiceID:         "svc-1",
		Budget:            500,
		RequestedDateTime: "2025-05-01T09:00:00",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(f.store.hires) != 0 || len(f.notifier.sent) != 0 {
		t.Fatalf("expected nothing persisted or sent")
	}
}
