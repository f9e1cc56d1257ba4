package redisfeed

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bhojansetu/bhojan-setu-api/pkg/config"
)

// Channel prefix for change events: changefeed:orders, changefeed:products, ...
const channelPrefix = "changefeed:"

// channelPattern matches every change-feed channel (PSUBSCRIBE).
const channelPattern = channelPrefix + "*"

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func channelFor(table string) string {
	return channelPrefix + table
}
