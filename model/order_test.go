package model

import "testing"

func TestNormalizeOrderStatus(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want OrderStatus
	}{
		{"exact", "confirmed", OrderStatusConfirmed},
		{"upper", "CONFIRMED", OrderStatusConfirmed},
		{"mixed case", "Pending_Seller_Confirmation", OrderStatusPendingSeller},
		{"padded", "  completed  ", OrderStatusCompleted},
		{"padded upper", "\tREJECTED\n", OrderStatusRejected},
		{"cancelled", "cancelled", OrderStatusCancelled},
		{"empty", "", OrderStatusUnknown},
		{"whitespace only", "   ", OrderStatusUnknown},
		{"garbage", "shipped", OrderStatusUnknown},
		{"partial match", "confirm", OrderStatusUnknown},
		{"unicode garbage", "ยืนยันแล้ว", OrderStatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeOrderStatus(tc.raw); got != tc.want {
				t.Errorf("NormalizeOrderStatus(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

// Re-feeding a normalizer its own output must not change the value.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"CONFIRMED", " paid ", "Transfer", "delivery", "junk", ""}

	for _, raw := range inputs {
		if s := NormalizeOrderStatus(raw); NormalizeOrderStatus(string(s)) != s {
			t.Errorf("status normalization not idempotent for %q", raw)
		}
		if m := NormalizePaymentMethod(raw); NormalizePaymentMethod(string(m)) != m {
			t.Errorf("payment method normalization not idempotent for %q", raw)
		}
		if p := NormalizePaymentStatus(raw); NormalizePaymentStatus(string(p)) != p {
			t.Errorf("payment status normalization not idempotent for %q", raw)
		}
		if d := NormalizeDeliveryMethod(raw); NormalizeDeliveryMethod(string(d)) != d {
			t.Errorf("delivery method normalization not idempotent for %q", raw)
		}
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	cases := []struct {
		raw  string
		want PaymentMethod
	}{
		{"cash", PaymentMethodCash},
		{"CASH", PaymentMethodCash},
		{"PromptPay", PaymentMethodPromptPay},
		{" transfer ", PaymentMethodTransfer},
		{"bank_transfer", PaymentMethodUnknown},
		{"", PaymentMethodUnknown},
	}

	for _, tc := range cases {
		if got := NormalizePaymentMethod(tc.raw); got != tc.want {
			t.Errorf("NormalizePaymentMethod(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizePaymentStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want PaymentStatus
	}{
		{"awaiting_payment", PaymentStatusAwaiting},
		{"Payment_Submitted", PaymentStatusSubmitted},
		{"PAID", PaymentStatusPaid},
		{"not_required", PaymentStatusNotRequired},
		{"pending", PaymentStatusPending},
		{"refunded", PaymentStatusUnknown},
		{"", PaymentStatusUnknown},
	}

	for _, tc := range cases {
		if got := NormalizePaymentStatus(tc.raw); got != tc.want {
			t.Errorf("NormalizePaymentStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	terminal := []OrderStatus{OrderStatusCompleted, OrderStatusRejected, OrderStatusCancelled}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("expected %q to be terminal", s)
		}
	}

	open := []OrderStatus{OrderStatusPendingSeller, OrderStatusConfirmed, OrderStatusUnknown}
	for _, s := range open {
		if s.IsTerminal() {
			t.Errorf("expected %q to not be terminal", s)
		}
	}
}
