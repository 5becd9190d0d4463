package utils

import (
	"strings"
	"testing"
)

func TestEmptyListMessage(t *testing.T) {
	cases := []struct {
		filter string
		want   string
	}{
		{"", "No orders yet"},
		{"all", "No orders yet"},
		{"pending_seller_confirmation", "No orders awaiting confirmation"},
		{"rejected", "No rejected orders"},
		{"completed", "No completed orders"},
	}

	for _, tc := range cases {
		if got := EmptyListMessage(tc.filter); got != tc.want {
			t.Errorf("EmptyListMessage(%q) = %q, want %q", tc.filter, got, tc.want)
		}
	}
}

func TestQRCodeDataURI(t *testing.T) {
	uri, err := QRCodeDataURI("order-7711", 300)
	if err != nil {
		t.Fatalf("QRCodeDataURI failed: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("expected a png data uri, got %q prefix", uri[:min(len(uri), 30)])
	}
	if len(uri) <= len("data:image/png;base64,") {
		t.Error("expected encoded image bytes after the prefix")
	}
}
