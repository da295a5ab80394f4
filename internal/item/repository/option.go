package repository

import "time"

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name      string
	CreatedAt time.Time
}

// ListItemsOptions holds parameters for listing Items. Items are always
// returned newest first.
type ListItemsOptions struct{}

// DeleteItemOptions identifies the Item to remove.
type DeleteItemOptions struct {
	ID int64
}
