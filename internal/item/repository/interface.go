package repository

import (
	"context"

	"item-details-service/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, error)
	// DeleteItem reports whether a row was removed.
	DeleteItem(ctx context.Context, opt DeleteItemOptions) (bool, error)
}
