package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"campus_market/config"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Client talks to the marketplace core API. The bearer token is passed per
// call, never cached here; auth ownership stays with the caller's session.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

func New(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		http:     &http.Client{Timeout: cfg.Timeout},
		validate: validator.New(),
	}
}

// APIError is a structured (non-2xx) reply from the core API. Message is
// what the body carried, already safe to show to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
}

// do runs one round trip. Responses are decoded and schema-validated at this
// single boundary; handlers never re-parse upstream bodies ad hoc.
func (c *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: extractErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	if err := c.validate.Struct(out); err != nil {
		return fmt.Errorf("invalid %s response: %w", path, err)
	}
	return nil
}

// extractErrorMessage pulls a human-readable message out of an error body.
// The core API is inconsistent between {"error": ...} and {"message": ...};
// anything unparseable falls back to a generic message.
func extractErrorMessage(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "Something went wrong. Please try again."
}
