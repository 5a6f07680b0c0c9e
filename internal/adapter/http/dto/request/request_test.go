package request

import "testing"

func TestCreateHireRequestRequest_ToInput(t *testing.T) {
	r := CreateHireRequestRequest{
		ServiceID:         " svc-1 ",
		Message:           "  Need a logo ",
		Budget:            500,
		RequestedDateTime: "2025-06-20T15:00:00 ",
	}
	in := r.ToInput()
	if in.ServiceID != "svc-1" || in.Message != "Need a logo" || in.RequestedDateTime != "2025-06-20T15:00:00" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Budget != 500 {
		t.Fatalf("expected budget 500, got %v", in.Budget)
	}
}

func TestVerifyPaymentRequest_ToVerification(t *testing.T) {
	r := VerifyPaymentRequest{RazorpayOrderID: " order_1", RazorpayPaymentID: "pay_1 ", RazorpaySignature: " sig "}
	v := r.ToVerification()
	if v.OrderID != "order_1" || v.PaymentID != "pay_1" || v.Signature != "sig" {
		t.Fatalf("unexpected verification: %+v", v)
	}
}
