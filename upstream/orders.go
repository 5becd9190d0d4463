package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"campus_market/model"
)

type Pagination struct {
	TotalPages int `json:"totalPages" validate:"gte=0"`
	Total      int `json:"total" validate:"gte=0"`
}

type OrderListResult struct {
	Orders       []model.Order  `json:"orders" validate:"dive"`
	Pagination   Pagination     `json:"pagination"`
	StatusCounts map[string]int `json:"statusCounts"`
}

func listQuery(status string, page, limit int) string {
	q := url.Values{}
	if status != "" && status != "all" {
		q.Set("status", status)
	}
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))
	return q.Encode()
}

// ListOrders fetches one page of the caller's purchases.
func (c *Client) ListOrders(ctx context.Context, token, status string, page, limit int) (*OrderListResult, error) {
	var result OrderListResult
	if err := c.do(ctx, http.MethodGet, "/api/orders?"+listQuery(status, page, limit), token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSellerOrders fetches one page of orders placed against the caller's
// listings.
func (c *Client) ListSellerOrders(ctx context.Context, token, status string, page, limit int) (*OrderListResult, error) {
	var result OrderListResult
	if err := c.do(ctx, http.MethodGet, "/api/seller/orders?"+listQuery(status, page, limit), token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type orderEnvelope struct {
	Order model.Order `json:"order"`
}

func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*model.Order, error) {
	var env orderEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), token, nil, &env); err != nil {
		return nil, err
	}
	return &env.Order, nil
}

func (c *Client) ConfirmOrder(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodPatch, "/api/seller/orders/"+url.PathEscape(orderID)+"/confirm", token, nil, nil)
}

// RejectOrder declines an order. A blank reason is omitted from the request
// entirely; the core treats a missing field as "no reason provided".
func (c *Client) RejectOrder(ctx context.Context, token, orderID, reason string) error {
	var body any
	if strings.TrimSpace(reason) != "" {
		body = map[string]string{"reason": strings.TrimSpace(reason)}
	}
	return c.do(ctx, http.MethodPatch, "/api/seller/orders/"+url.PathEscape(orderID)+"/reject", token, body, nil)
}

func (c *Client) MarkDelivered(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodPost, "/api/seller/orders/"+url.PathEscape(orderID)+"/delivered", token, nil, nil)
}

// NotifyPayment tells the core the buyer has submitted payment for the
// order. No body besides auth.
func (c *Client) NotifyPayment(ctx context.Context, token, orderID string) error {
	return c.do(ctx, http.MethodPost, "/api/orders/"+url.PathEscape(orderID)+"/payment", token, nil, nil)
}
