package redis

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"item-details-service/internal/itemdetail/repository"
	"item-details-service/pkg/log"
)

const (
	keyPrefix = "item_detail:"
	// markerTTL bounds how long an invalidation marker outlives the eviction.
	markerTTL = 10 * time.Minute
	// deletedMarker never compares as older than a version, so deleted rows are never refilled.
	deletedMarker = "deleted"
)

type implCache struct {
	client *redis.Client
	l      log.Logger
}

// New creates a Redis-backed CacheRepository for ItemDetail records.
func New(client *redis.Client, l log.Logger) repository.CacheRepository {
	if client == nil {
		panic("itemdetail/repository/redis: client is required")
	}
	return &implCache{client: client, l: l}
}

func key(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

func markerKey(id int64) string {
	return fmt.Sprintf("%s%d:invalidated", keyPrefix, id)
}

// version renders t as fixed-width text so Lua string comparison orders it.
func version(t time.Time) string {
	return fmt.Sprintf("%020d", t.UnixNano())
}

func (c *implCache) dsn(method string) string {
	return fmt.Sprintf("itemdetail/repository/redis.%s", method)
}
