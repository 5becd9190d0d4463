package cache

import (
	"context"
	"log"
	"time"

	"campus_market/config"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

// Connect opens the shared redis client. The gateway holds no domain state,
// so redis being down only costs caching and live refresh hints; every code
// path here degrades to a miss or a no-op instead of failing the request.
func Connect(cfg config.RedisConfig) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, serving uncached: %v", cfg.Addr, err)
	}
}
