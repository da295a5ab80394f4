package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"item-details-service/config"
)

// Connect creates a Redis client and verifies the connection.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis (%s): %w", cfg.Addr, err)
	}
	return client, nil
}
