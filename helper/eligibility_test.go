package helper

import (
	"testing"

	"campus_market/model"
)

func TestRequiresPayment(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"cash lower", "cash", false},
		{"cash upper", "CASH", false},
		{"cash padded", "  Cash ", false},
		{"empty", "", false},
		{"whitespace only", "  ", false},
		{"promptpay", "promptpay", true},
		{"transfer upper", "TRANSFER", true},
		{"unknown method still payable", "wallet_x", true},
		{"legacy label still payable", "Bank Transfer", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RequiresPayment(model.NormalizePaymentMethod(tc.raw), tc.raw)
			if got != tc.want {
				t.Errorf("RequiresPayment for %q = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestDeriveOrderActions_CashPickupConfirmed(t *testing.T) {
	a := DeriveOrderActions(model.Order{
		ID:             "o1",
		Status:         "confirmed",
		DeliveryMethod: "pickup",
		PaymentMethod:  "cash",
	})

	if a.RequiresPayment {
		t.Error("cash order should not require payment")
	}
	if a.AwaitingBuyerPayment {
		t.Error("cash order should never await buyer payment")
	}
	if !a.CanMarkDelivered {
		t.Error("seller should be able to mark a confirmed cash order delivered")
	}
	if a.CanPrintLabel {
		t.Error("pickup order should have no shipping label")
	}
}

func TestDeriveOrderActions_PromptPayAwaiting(t *testing.T) {
	a := DeriveOrderActions(model.Order{
		ID:             "o2",
		Status:         "confirmed",
		DeliveryMethod: "delivery",
		PaymentMethod:  "promptpay",
		PaymentStatus:  "awaiting_payment",
	})

	if !a.AwaitingBuyerPayment {
		t.Error("expected awaitingBuyerPayment for unpaid promptpay order")
	}
	if a.PaymentComplete {
		t.Error("payment should not be complete")
	}
	if a.CanMarkDelivered {
		t.Error("seller must not mark delivered while payment is outstanding")
	}
	if !a.CanPrintLabel {
		t.Error("delivery order should allow label printing")
	}
}

func TestDeriveOrderActions_PromptPayPaid(t *testing.T) {
	a := DeriveOrderActions(model.Order{
		ID:            "o3",
		Status:        "confirmed",
		PaymentMethod: "promptpay",
		PaymentStatus: "paid",
	})

	if a.AwaitingBuyerPayment {
		t.Error("paid order should not await buyer payment")
	}
	if !a.PaymentComplete {
		t.Error("expected paymentComplete for paid order")
	}
	if !a.CanMarkDelivered {
		t.Error("seller should mark a paid confirmed order delivered")
	}
}

func TestDeriveOrderActions_MissingPaymentStatusTreatedAsOutstanding(t *testing.T) {
	a := DeriveOrderActions(model.Order{
		ID:            "o4",
		Status:        "Confirmed",
		PaymentMethod: "Transfer",
	})

	if !a.AwaitingBuyerPayment {
		t.Error("missing payment status on a payable order should count as outstanding")
	}
	if a.CanMarkDelivered {
		t.Error("delivery must stay blocked until payment lands")
	}
}

func TestDeriveOrderActions_SellerAlreadyDelivered(t *testing.T) {
	a := DeriveOrderActions(model.Order{
		ID:              "o5",
		Status:          "confirmed",
		PaymentMethod:   "cash",
		SellerDelivered: true,
	})

	if a.CanMarkDelivered {
		t.Error("already-delivered order should not offer mark-delivered again")
	}
}

// On backend-consistent fixtures awaiting and complete never coexist. Any
// failure here means a fixture models data the core should never emit.
func TestDeriveOrderActions_ConsistentFixturesStayExclusive(t *testing.T) {
	statuses := []string{"pending_seller_confirmation", "confirmed", "rejected", "completed", "cancelled"}
	methods := []string{"cash", "transfer", "promptpay"}

	// For each method only these payment statuses are backend-consistent.
	consistent := map[string][]string{
		"cash":      {"", "not_required"},
		"transfer":  {"pending", "awaiting_payment", "payment_submitted", "paid"},
		"promptpay": {"pending", "awaiting_payment", "payment_submitted", "paid"},
	}

	for _, status := range statuses {
		for _, method := range methods {
			for _, payStatus := range consistent[method] {
				a := DeriveOrderActions(model.Order{
					ID:            "fixture",
					Status:        status,
					PaymentMethod: method,
					PaymentStatus: payStatus,
				})
				if !ActionsConsistent(a) {
					t.Errorf("awaiting and complete both true for status=%s method=%s paymentStatus=%q",
						status, method, payStatus)
				}
			}
		}
	}
}

func TestDeriveOrderActions_ContactSeller(t *testing.T) {
	withSeller := DeriveOrderActions(model.Order{ID: "o6", SellerID: "s1", Status: "confirmed"})
	if !withSeller.CanContactSeller {
		t.Error("order with a seller id should allow contacting the seller")
	}

	withoutSeller := DeriveOrderActions(model.Order{ID: "o7", Status: "confirmed"})
	if withoutSeller.CanContactSeller {
		t.Error("order without a seller id cannot open a chat thread")
	}
}
