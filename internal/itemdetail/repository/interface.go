package repository

import (
	"context"
	"time"

	"item-details-service/internal/itemdetail"
)

// Repository persists ItemDetail rows.
// Get, Update and Delete return itemdetail.ErrNotFound when the row does not exist.
type Repository interface {
	CreateItemDetail(ctx context.Context, opt CreateOptions) (itemdetail.ItemDetail, error)
	GetItemDetail(ctx context.Context, opt GetOptions) (itemdetail.ItemDetail, error)
	ListItemDetails(ctx context.Context, opt ListOptions) ([]itemdetail.ItemDetail, error)
	// UpdateItemDetail merges opt.Fields into the row in one transaction and
	// returns the row before and after the merge.
	UpdateItemDetail(ctx context.Context, opt UpdateOptions) (before, after itemdetail.ItemDetail, err error)
	// DeleteItemDetail removes the row and returns it as it was.
	DeleteItemDetail(ctx context.Context, opt DeleteOptions) (itemdetail.ItemDetail, error)
}

// HistoryRepository persists audit history. Versions start at 1 per item.
type HistoryRepository interface {
	InsertHistory(ctx context.Context, opt InsertHistoryOptions) (itemdetail.HistoryEntry, error)
	ListHistory(ctx context.Context, itemID int64) ([]itemdetail.HistoryEntry, error)
}

// CacheRepository caches ItemDetail records by id. Get returns ErrCacheMiss on a miss.
// Set skips the fill, without error, when d is older than the last
// invalidation of d.ID, so a read racing an update cannot restore stale data.
type CacheRepository interface {
	Get(ctx context.Context, id int64) (itemdetail.ItemDetail, error)
	Set(ctx context.Context, d itemdetail.ItemDetail, ttl time.Duration) error
	Invalidate(ctx context.Context, opt InvalidateOptions) error
}
