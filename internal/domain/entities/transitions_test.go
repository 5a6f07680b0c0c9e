package entities

import (
	"errors"
	"math"
	"testing"
)

func pendingRequest() HireRequest {
	return HireRequest{ID: "hr-1", Status: HireStatusPending, Budget: 500}
}

func TestApply_HappyPath(t *testing.T) {
	h := pendingRequest()

	steps := []Operation{OpAccept, OpMarkPaid, OpWorkerComplete, OpClientConfirm}
	for _, op := range steps {
		next, err := Apply(op, h)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", op, err)
		}
		h = next
	}

	if h.Status != HireStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", h.Status)
	}
	if h.WorkStatus != WorkStatusCompleted || h.PaymentStatus != PaymentStatusPaid || h.ClientConfirmationStatus != ConfirmationStatusConfirmed {
		t.Fatalf("unexpected final axes: %+v", h)
	}
}

func TestApply_AcceptSetsPaymentAndConfirmationPending(t *testing.T) {
	next, err := Apply(OpAccept, pendingRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.PaymentStatus != PaymentStatusPending || next.ClientConfirmationStatus != ConfirmationStatusPending {
		t.Fatalf("unexpected axes: %+v", next)
	}
	if next.WorkStatus != WorkStatusUnset {
		t.Fatalf("work must not start before payment, got %s", next.WorkStatus)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	h := pendingRequest()
	if _, err := Apply(OpAccept, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Status != HireStatusPending {
		t.Fatalf("input was mutated: %+v", h)
	}
}

func TestApply_GuardFailures(t *testing.T) {
	accepted, _ := Apply(OpAccept, pendingRequest())
	paid, _ := Apply(OpMarkPaid, accepted)
	done, _ := Apply(OpWorkerComplete, paid)
	completed, _ := Apply(OpClientConfirm, done)
	rejected, _ := Apply(OpReject, pendingRequest())

	cases := []struct {
		name string
		op   Operation
		h    HireRequest
	}{
		{name: "accept twice", op: OpAccept, h: accepted},
		{name: "reject after accept", op: OpReject, h: accepted},
		{name: "accept rejected", op: OpAccept, h: rejected},
		{name: "reject rejected", op: OpReject, h: rejected},
		{name: "complete before payment", op: OpWorkerComplete, h: accepted},
		{name: "mark paid on pending request", op: OpMarkPaid, h: pendingRequest()},
		{name: "mark paid twice", op: OpMarkPaid, h: paid},
		{name: "confirm before completion", op: OpClientConfirm, h: paid},
		{name: "confirm twice", op: OpClientConfirm, h: completed},
		{name: "complete on completed request", op: OpWorkerComplete, h: completed},
		{name: "dispute after confirm", op: OpClientDispute, h: completed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Apply(tc.op, tc.h)
			if !errors.Is(err, ErrTransitionRejected) {
				t.Fatalf("expected ErrTransitionRejected, got %v", err)
			}
			var te *TransitionError
			if !errors.As(err, &te) || te.Op != tc.op {
				t.Fatalf("expected TransitionError for %s, got %v", tc.op, err)
			}
		})
	}
}

func TestApply_AttachOrderOnce(t *testing.T) {
	accepted, _ := Apply(OpAccept, pendingRequest())
	if err := CanApply(OpAttachOrder, accepted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	accepted.RazorpayOrderID = "order_1"
	if err := CanApply(OpAttachOrder, accepted); !errors.Is(err, ErrTransitionRejected) {
		t.Fatalf("expected second attach to be rejected, got %v", err)
	}
}

func TestApply_Dispute(t *testing.T) {
	h := pendingRequest()
	for _, op := range []Operation{OpAccept, OpMarkPaid, OpWorkerComplete, OpClientDispute} {
		var err error
		if h, err = Apply(op, h); err != nil {
			t.Fatalf("%s: %v", op, err)
		}
	}
	if h.ClientConfirmationStatus != ConfirmationStatusDisputed {
		t.Fatalf("expected DISPUTED, got %s", h.ClientConfirmationStatus)
	}
	if h.Status != HireStatusAccepted {
		t.Fatalf("dispute must not complete the request, got %s", h.Status)
	}
	if _, err := Apply(OpClientConfirm, h); !errors.Is(err, ErrTransitionRejected) {
		t.Fatalf("expected confirm after dispute to be rejected, got %v", err)
	}
}

func TestApply_UnknownOperation(t *testing.T) {
	_, err := Apply(Operation("teleport"), pendingRequest())
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestCheckInvariants(t *testing.T) {
	bad := []HireRequest{
		{Status: HireStatusAccepted, WorkStatus: WorkStatusInProgress, PaymentStatus: PaymentStatusPending},
		{Status: HireStatusAccepted, WorkStatus: WorkStatusCompleted},
		{Status: HireStatusCompleted, WorkStatus: WorkStatusCompleted, PaymentStatus: PaymentStatusPaid, ClientConfirmationStatus: ConfirmationStatusPending},
	}
	for i, h := range bad {
		if err := h.CheckInvariants(); !errors.Is(err, ErrInvariantViolation) {
			t.Fatalf("case %d: expected invariant violation, got %v", i, err)
		}
	}

	ok := HireRequest{Status: HireStatusCompleted, WorkStatus: WorkStatusCompleted, PaymentStatus: PaymentStatusPaid, ClientConfirmationStatus: ConfirmationStatusConfirmed}
	if err := ok.CheckInvariants(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestToMinorUnits(t *testing.T) {
	cases := map[float64]int64{500: 50000, 10.5: 1050, 19.99: 1999, 0.01: 1, 0.001: 0, 1e17: math.MaxInt64, -1e17: math.MinInt64, math.Inf(1): math.MaxInt64}
	for in, want := range cases {
		if got := ToMinorUnits(in); got != want {
			t.Fatalf("ToMinorUnits(%v) = %d, want %d", in, got, want)
		}
	}
	if got := ToMinorUnits(math.NaN()); got != 0 {
		t.Fatalf("ToMinorUnits(NaN) = %d, want 0", got)
	}
}

func TestValidBudget(t *testing.T) {
	cases := map[float64]bool{
		500:         true,
		0.01:        true,
		1e12:        true,
		0:           false,
		-5:          false,
		0.004:       false,
		1e12 + 1:    false,
		1e17:        false,
		math.Inf(1): false,
	}
	for in, want := range cases {
		if got := ValidBudget(in); got != want {
			t.Fatalf("ValidBudget(%v) = %v, want %v", in, got, want)
		}
	}
	if ValidBudget(math.NaN()) {
		t.Fatalf("ValidBudget(NaN) must be false")
	}
}
