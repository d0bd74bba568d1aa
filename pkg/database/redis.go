package database

import (
	"context"
	"fmt"
	"time"

	"lexiscreen_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the cache used for risk labels and the assignment
// list. The pool is kept small; the cache load here is a handful of
// keys, not a hot path.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
