package repository

import (
	"time"

	"item-details-service/internal/itemdetail"
)

// CreateOptions carries validated, normalized fields for a new row.
type CreateOptions struct {
	Fields    itemdetail.Fields
	CreatedBy string
	CreatedAt time.Time
}

type GetOptions struct {
	ID int64
}

// ListOptions filters ListItemDetails. A nil ParentItemID lists every row.
type ListOptions struct {
	ParentItemID *int64
}

// UpdateOptions carries validated, normalized fields to merge into row ID.
type UpdateOptions struct {
	ID        int64
	Fields    itemdetail.Fields
	UpdatedAt time.Time
}

type DeleteOptions struct {
	ID int64
}

// InvalidateOptions evicts the cached row ID. Version is the updated_at of
// the row that made the entry stale; Deleted blocks any later fill.
type InvalidateOptions struct {
	ID      int64
	Version time.Time
	Deleted bool
}

type InsertHistoryOptions struct {
	ItemID    int64
	Action    itemdetail.Action
	Actor     string
	Changes   []string
	CreatedAt time.Time
}
