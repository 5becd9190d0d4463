package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus_market/config"
)

func testClient(baseURL string) *Client {
	return New(config.UpstreamConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func TestDoSendsAuthAndCorrelationHeaders(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := testClient(srv.URL).ConfirmOrder(context.Background(), "tok-123", "o1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
	if gotReqID == "" {
		t.Error("expected a correlation id header")
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error field", 422, `{"error":"item sold out"}`, "item sold out"},
		{"message field", 409, `{"message":"order already confirmed"}`, "order already confirmed"},
		{"unparseable body", 500, `<html>oops</html>`, "Something went wrong. Please try again."},
		{"empty body", 500, ``, "Something went wrong. Please try again."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			err := testClient(srv.URL).MarkDelivered(context.Background(), "tok", "o1")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.Status != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, apiErr.Status)
			}
			if apiErr.Message != tc.want {
				t.Errorf("expected message %q, got %q", tc.want, apiErr.Message)
			}
		})
	}
}

func TestRejectOrderOmitsBlankReason(t *testing.T) {
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(raw))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	ctx := context.Background()
	if err := c.RejectOrder(ctx, "tok", "o1", "   "); err != nil {
		t.Fatalf("blank reason reject failed: %v", err)
	}
	if err := c.RejectOrder(ctx, "tok", "o1", " changed my mind "); err != nil {
		t.Fatalf("reject with reason failed: %v", err)
	}

	if len(bodies) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(bodies))
	}
	if bodies[0] != "" {
		t.Errorf("blank reason should send no body, got %q", bodies[0])
	}
	if !strings.Contains(bodies[1], `"reason":"changed my mind"`) {
		t.Errorf("expected trimmed reason in body, got %q", bodies[1])
	}
}

func TestListOrdersRejectsMalformedRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Second order is missing its id.
		io.WriteString(w, `{"orders":[{"id":"o1","status":"confirmed"},{"status":"confirmed"}],"pagination":{"totalPages":1,"total":2}}`)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ListOrders(context.Background(), "tok", "all", 1, 10)
	if err == nil {
		t.Fatal("expected schema validation to reject an order without an id")
	}
}

func TestListOrdersForwardsFilterAndPaging(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"orders":[],"pagination":{"totalPages":0,"total":0}}`)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).ListOrders(context.Background(), "tok", "rejected", 3, 20); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	for _, part := range []string{"status=rejected", "page=3", "limit=20"} {
		if !strings.Contains(gotQuery, part) {
			t.Errorf("expected %q in query, got %q", part, gotQuery)
		}
	}
}

func TestListOrdersDropsAllFilter(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"orders":[],"pagination":{"totalPages":0,"total":0}}`)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).ListOrders(context.Background(), "tok", "all", 1, 10); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if strings.Contains(gotQuery, "status=") {
		t.Errorf("\"all\" filter should not reach the core, got %q", gotQuery)
	}
}

func TestCreateThreadAcceptsAnyIDField(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"id":"t1"}`, "t1"},
		{`{"threadId":"t2"}`, "t2"},
		{`{"_id":"t3"}`, "t3"},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, tc.body)
		}))
		id, err := testClient(srv.URL).CreateThread(context.Background(), "tok", "seller-1")
		srv.Close()
		if err != nil {
			t.Fatalf("CreateThread(%s) failed: %v", tc.body, err)
		}
		if id != tc.want {
			t.Errorf("CreateThread(%s) = %q, want %q", tc.body, id, tc.want)
		}
	}
}

func TestCreateThreadWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).CreateThread(context.Background(), "tok", "seller-1"); err == nil {
		t.Fatal("expected an error when the chat service returns no id")
	}
}
