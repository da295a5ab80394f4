package hook

import (
	"context"

	"item-details-service/internal/itemdetail"
	"item-details-service/internal/itemdetail/repository"
)

type audit struct {
	repo repository.HistoryRepository
}

// NewAudit records one history entry per mutation, versioned per item.
func NewAudit(repo repository.HistoryRepository) itemdetail.Hook {
	return &audit{repo: repo}
}

func (h *audit) Name() string { return "audit" }

func (h *audit) Handle(ctx context.Context, evt itemdetail.Event) error {
	_, err := h.repo.InsertHistory(ctx, repository.InsertHistoryOptions{
		ItemID:    evt.ItemID,
		Action:    evt.Action,
		Actor:     evt.Actor,
		Changes:   evt.Changes,
		CreatedAt: evt.OccurredAt,
	})
	return err
}
