package cache

import (
	"context"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
)

var (
	newRedisClient = func(opts *redis.Options) *redis.Client {
		return redis.NewClient(opts)
	}
	pingRedis = func(ctx context.Context, client *redis.Client) error {
		return client.Ping(ctx).Err()
	}
	parseRedisURL = redis.ParseURL
)

// Connect builds a redis client from either a plain host:port address or
// a redis:// URL and verifies the connection. Returns nil when addr is
// empty; callers treat a nil client as cache disabled.
func Connect(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		log.Println("Warning: no redis address configured, analysis caching disabled")
		return nil
	}

	opts := &redis.Options{Addr: addr}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := parseRedisURL(addr)
		if err != nil {
			log.Fatalf("failed to parse redis URL: %v", err)
		}
		opts = parsed
	}

	client := newRedisClient(opts)
	if err := pingRedis(ctx, client); err != nil {
		log.Printf("Warning: redis unreachable at %s, analysis caching disabled: %v", addr, err)
		return nil
	}
	log.Println("Connected to Redis")
	return client
}
