package cache

import (
	"context"
	"time"
)

const upstreamHealthKey = "upstream:health"

func SetUpstreamHealth(ctx context.Context, state string, ttl time.Duration) {
	if Rdb == nil {
		return
	}
	Rdb.Set(ctx, upstreamHealthKey, state, ttl)
}

// UpstreamHealth returns the monitor's last verdict, or "unknown" when the
// monitor has not reported (or redis is down).
func UpstreamHealth(ctx context.Context) string {
	if Rdb == nil {
		return "unknown"
	}
	state, err := Rdb.Get(ctx, upstreamHealthKey).Result()
	if err != nil || state == "" {
		return "unknown"
	}
	return state
}
