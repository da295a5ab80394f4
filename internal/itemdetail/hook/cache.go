package hook

import (
	"context"

	"item-details-service/internal/itemdetail"
	"item-details-service/internal/itemdetail/repository"
)

type cacheInvalidation struct {
	cache repository.CacheRepository
}

// NewCacheInvalidation evicts the cached record after updates and deletes.
func NewCacheInvalidation(cache repository.CacheRepository) itemdetail.Hook {
	return &cacheInvalidation{cache: cache}
}

func (h *cacheInvalidation) Name() string { return "cache" }

func (h *cacheInvalidation) Handle(ctx context.Context, evt itemdetail.Event) error {
	switch evt.Action {
	case itemdetail.ActionUpdated:
		opt := repository.InvalidateOptions{ID: evt.ItemID, Version: evt.OccurredAt}
		if evt.After != nil {
			opt.Version = evt.After.UpdatedAt
		}
		return h.cache.Invalidate(ctx, opt)
	case itemdetail.ActionDeleted:
		return h.cache.Invalidate(ctx, repository.InvalidateOptions{ID: evt.ItemID, Deleted: true})
	}
	return nil
}
