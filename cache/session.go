package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus_market/model"
)

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

// SaveSession caches the caller's profile snapshot so repeated /me reads
// skip the upstream profile endpoint.
func SaveSession(ctx context.Context, userID string, snapshot model.UserSnapshot, ttl time.Duration) {
	if Rdb == nil {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	Rdb.Set(ctx, sessionKey(userID), raw, ttl)
}

func Session(ctx context.Context, userID string) (*model.UserSnapshot, bool) {
	if Rdb == nil {
		return nil, false
	}
	raw, err := Rdb.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var snapshot model.UserSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, false
	}
	return &snapshot, true
}

func lastSeenKey(userID string) string {
	return fmt.Sprintf("notify:lastseen:%s", userID)
}

// Last pushed notification id per user, so a reconnecting socket does not
// replay batches the client already rendered.
func LastSeenNotification(ctx context.Context, userID string) string {
	if Rdb == nil {
		return ""
	}
	id, err := Rdb.Get(ctx, lastSeenKey(userID)).Result()
	if err != nil {
		return ""
	}
	return id
}

func SetLastSeenNotification(ctx context.Context, userID, notificationID string, ttl time.Duration) {
	if Rdb == nil || notificationID == "" {
		return
	}
	Rdb.Set(ctx, lastSeenKey(userID), notificationID, ttl)
}
