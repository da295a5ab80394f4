package itemdetail

import (
	"context"
	"encoding/json"
)

// UseCase defines the business logic for the itemdetail domain.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) error
	List(ctx context.Context, input ListInput) (ListOutput, error)
}

// AttachmentLister lists attachments owned by an ItemDetail.
type AttachmentLister interface {
	ListAttachments(ctx context.Context, itemID int64) ([]json.RawMessage, error)
}

// CommentLister lists comments on an ItemDetail.
type CommentLister interface {
	ListComments(ctx context.Context, itemID int64) ([]json.RawMessage, error)
}

// DependencyLister resolves the dependency graph of an ItemDetail.
type DependencyLister interface {
	ListDependencies(ctx context.Context, itemID int64) ([]json.RawMessage, error)
}

// HistoryLister reads the audit history of an ItemDetail.
type HistoryLister interface {
	ListHistory(ctx context.Context, itemID int64) ([]HistoryEntry, error)
}
