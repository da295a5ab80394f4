package item

import (
	"time"

	"item-details-service/internal/model"
)

// NameMaxLength bounds Item and ItemDetail names.
const NameMaxLength = 255

// Item is the minimal named record.
type Item struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

// CreateItemInput carries the raw name; nil means the field was absent.
type CreateItemInput struct {
	Scope model.Scope
	Name  *string
}

type ListItemsInput struct{}

type DeleteItemInput struct {
	Scope model.Scope
	ID    int64
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}
