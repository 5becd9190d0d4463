package upstream

import (
	"context"
	"errors"
	"net/http"
)

type threadResult struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId"`
	MongoID  string `json:"_id"`
}

// CreateThread opens (or reuses) a chat thread with a seller. The chat
// service has answered with three different id field names across versions,
// so all of them are accepted.
func (c *Client) CreateThread(ctx context.Context, token, sellerID string) (string, error) {
	var result threadResult
	err := c.do(ctx, http.MethodPost, "/api/chats/threads", token, map[string]string{"sellerId": sellerID}, &result)
	if err != nil {
		return "", err
	}

	switch {
	case result.ID != "":
		return result.ID, nil
	case result.ThreadID != "":
		return result.ThreadID, nil
	case result.MongoID != "":
		return result.MongoID, nil
	}
	return "", errors.New("chat service returned no thread id")
}
