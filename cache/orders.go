package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus_market/model"
)

// Order list responses are cached under a per-user generation counter. A
// successful mutation bumps the generation, which orphans every cached page
// at once — the gateway's version of the UI's full-reload-after-mutation.
// Orphaned keys simply age out via TTL. A response fetched under an old
// generation can never be stored over a fresher one because the generation
// is part of the key.

func listKey(scope, userID string, gen int64, status string, page, limit int) string {
	return fmt.Sprintf("orders:%s:%s:g%d:%s:%d:%d", scope, userID, gen, status, page, limit)
}

func genKey(scope, userID string) string {
	return fmt.Sprintf("ordersgen:%s:%s", scope, userID)
}

func ListGeneration(ctx context.Context, scope, userID string) int64 {
	if Rdb == nil {
		return 0
	}
	gen, err := Rdb.Get(ctx, genKey(scope, userID)).Int64()
	if err != nil {
		return 0
	}
	return gen
}

// BumpListGeneration invalidates the user's cached pages in both scopes. A
// seller action changes what the same user sees as a buyer and vice versa,
// so both counters move together.
func BumpListGeneration(ctx context.Context, userID string) {
	if Rdb == nil {
		return
	}
	Rdb.Incr(ctx, genKey("buyer", userID))
	Rdb.Incr(ctx, genKey("seller", userID))
}

func CachedList(ctx context.Context, scope, userID string, gen int64, status string, page, limit int) (*model.OrderListResponse, bool) {
	if Rdb == nil {
		return nil, false
	}
	raw, err := Rdb.Get(ctx, listKey(scope, userID, gen, status, page, limit)).Bytes()
	if err != nil {
		return nil, false
	}
	var resp model.OrderListResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func StoreList(ctx context.Context, scope, userID string, gen int64, status string, page, limit int, resp *model.OrderListResponse, ttl time.Duration) {
	if Rdb == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	Rdb.Set(ctx, listKey(scope, userID, gen, status, page, limit), raw, ttl)
}

func OrdersChannel(userID string) string {
	return fmt.Sprintf("user:%s:orders", userID)
}

// PublishOrdersChanged nudges the user's open notification sockets to
// refresh immediately instead of waiting for the next poll tick.
func PublishOrdersChanged(ctx context.Context, userID string) {
	if Rdb == nil {
		return
	}
	Rdb.Publish(ctx, OrdersChannel(userID), "refresh")
}
