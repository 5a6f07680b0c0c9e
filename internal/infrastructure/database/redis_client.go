package database

import (
	"context"
	"log"
	"time"

	"gig_escrow/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the Redis client used for notification fan-out and the payout
// queue. A failed ping is logged and the client is still returned: notifications
// are best-effort and the workflow keeps running without them.
func ConnectRedis(ctx context.Context, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if pong, err := client.Ping(pingCtx).Result(); err != nil {
		log.Printf("[database][redis] could not connect addr=%s err=%v", cfg.RedisAddr, err)
	} else {
		log.Printf("[database][redis] connected addr=%s reply=%s", cfg.RedisAddr, pong)
	}
	return client
}
