package redis_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
	"item-details-service/internal/itemdetail/repository/redis"
	"item-details-service/pkg/log"
)

func newCache(t *testing.T) repo.CacheRepository {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping redis cache tests")
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { client.Close() })
	return redis.New(client, log.NewNop())
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	category := itemdetail.CategoryUrgent
	d := itemdetail.ItemDetail{
		ID:        time.Now().UnixNano(),
		Name:      "cached",
		Category:  &category,
		Tags:      json.RawMessage(`["a"]`),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 5, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	t.Cleanup(func() { _ = c.Invalidate(ctx, repo.InvalidateOptions{ID: d.ID, Deleted: true}) })

	if _, err := c.Get(ctx, d.ID); !errors.Is(err, repo.ErrCacheMiss) {
		t.Fatalf("expected miss before Set, got %v", err)
	}
	if err := c.Set(ctx, d, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "cached" || *got.Category != category || string(got.Tags) != `["a"]` {
		t.Errorf("unexpected cached record: %+v", got)
	}
	if got.Metadata != nil {
		t.Errorf("unset structured field must stay nil, got %s", got.Metadata)
	}
	if !got.CreatedAt.Equal(d.CreatedAt) {
		t.Errorf("created_at changed: %v", got.CreatedAt)
	}

	if err := c.Invalidate(ctx, repo.InvalidateOptions{ID: d.ID, Version: d.UpdatedAt}); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, err := c.Get(ctx, d.ID); !errors.Is(err, repo.ErrCacheMiss) {
		t.Errorf("expected miss after Invalidate, got %v", err)
	}
}

func TestCacheSkipsStaleFill(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	id := time.Now().UnixNano()
	v1 := itemdetail.ItemDetail{ID: id, Name: "v1", UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	v2 := itemdetail.ItemDetail{ID: id, Name: "v2", UpdatedAt: v1.UpdatedAt.Add(time.Nanosecond)}
	t.Cleanup(func() { _ = c.Invalidate(ctx, repo.InvalidateOptions{ID: id, Deleted: true}) })

	if err := c.Invalidate(ctx, repo.InvalidateOptions{ID: id, Version: v2.UpdatedAt}); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if err := c.Set(ctx, v1, time.Minute); err != nil {
		t.Fatalf("Set v1: %v", err)
	}
	if _, err := c.Get(ctx, id); !errors.Is(err, repo.ErrCacheMiss) {
		t.Fatalf("a row older than the invalidation must not be cached, got %v", err)
	}

	// A lower version never rolls the marker back.
	if err := c.Invalidate(ctx, repo.InvalidateOptions{ID: id, Version: v1.UpdatedAt}); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if err := c.Set(ctx, v1, time.Minute); err != nil {
		t.Fatalf("Set v1: %v", err)
	}
	if _, err := c.Get(ctx, id); !errors.Is(err, repo.ErrCacheMiss) {
		t.Fatalf("marker must not move backwards, got %v", err)
	}

	if err := c.Set(ctx, v2, time.Minute); err != nil {
		t.Fatalf("Set v2: %v", err)
	}
	got, err := c.Get(ctx, id)
	if err != nil || got.Name != "v2" {
		t.Fatalf("expected v2 to be cached, got %+v %v", got, err)
	}

	if err := c.Invalidate(ctx, repo.InvalidateOptions{ID: id, Deleted: true}); err != nil {
		t.Fatalf("Invalidate deleted: %v", err)
	}
	if err := c.Set(ctx, v2, time.Minute); err != nil {
		t.Fatalf("Set after delete: %v", err)
	}
	if _, err := c.Get(ctx, id); !errors.Is(err, repo.ErrCacheMiss) {
		t.Errorf("a deleted row must not be refilled, got %v", err)
	}
}
