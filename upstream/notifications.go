package upstream

import (
	"context"
	"net/http"

	"campus_market/model"
)

type NotificationListResult struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unreadCount" validate:"gte=0"`
}

func (c *Client) ListNotifications(ctx context.Context, token string) (*NotificationListResult, error) {
	var result NotificationListResult
	if err := c.do(ctx, http.MethodGet, "/api/notifications", token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type meEnvelope struct {
	User model.UserSnapshot `json:"user"`
}

// Me fetches the caller's profile snapshot from the core.
func (c *Client) Me(ctx context.Context, token string) (*model.UserSnapshot, error) {
	var env meEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/me", token, nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// Health pings the core API without auth. Used by the background monitor.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}
