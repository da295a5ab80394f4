package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
)

// Detail returns one ItemDetail and its related-data envelope.
func (uc *implUseCase) Detail(ctx context.Context, input itemdetail.DetailInput) (itemdetail.DetailOutput, error) {
	if err := uc.checkRead(input.Scope); err != nil {
		return itemdetail.DetailOutput{}, err
	}

	d, err := uc.getItemDetail(ctx, input.ID, input.NoCache)
	if err != nil {
		return itemdetail.DetailOutput{}, err
	}

	return itemdetail.DetailOutput{
		ItemDetail: d,
		Related:    uc.loadRelated(ctx, d.ID),
	}, nil
}

// getItemDetail reads through the cache when one is configured.
func (uc *implUseCase) getItemDetail(ctx context.Context, id int64, noCache bool) (itemdetail.ItemDetail, error) {
	if uc.cache != nil && !noCache {
		d, err := uc.cache.Get(ctx, id)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, repo.ErrCacheMiss) {
			uc.l.Warnf(ctx, "uc.Detail cache get %d: %v", id, err)
		}
	}

	d, err := uc.repo.GetItemDetail(ctx, repo.GetOptions{ID: id})
	if err != nil {
		if !errors.Is(err, itemdetail.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Detail GetItemDetail: %v", err)
		}
		return itemdetail.ItemDetail{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, d, uc.ttl); err != nil {
			uc.l.Warnf(ctx, "uc.Detail cache set %d: %v", id, err)
		}
	}
	return d, nil
}

// loadRelated gathers the envelope. A failing collaborator yields an empty collection.
func (uc *implUseCase) loadRelated(ctx context.Context, id int64) itemdetail.Related {
	rel := itemdetail.Related{
		Attachments:  []json.RawMessage{},
		Comments:     []json.RawMessage{},
		Dependencies: []json.RawMessage{},
		History:      []itemdetail.HistoryEntry{},
		RelatedItems: []itemdetail.ItemDetail{},
	}

	if uc.attachments != nil {
		if v, err := uc.attachments.ListAttachments(ctx, id); err != nil {
			uc.l.Warnf(ctx, "uc.Detail attachments %d: %v", id, err)
		} else if v != nil {
			rel.Attachments = v
		}
	}
	if uc.comments != nil {
		if v, err := uc.comments.ListComments(ctx, id); err != nil {
			uc.l.Warnf(ctx, "uc.Detail comments %d: %v", id, err)
		} else if v != nil {
			rel.Comments = v
		}
	}
	if uc.dependencies != nil {
		if v, err := uc.dependencies.ListDependencies(ctx, id); err != nil {
			uc.l.Warnf(ctx, "uc.Detail dependencies %d: %v", id, err)
		} else if v != nil {
			rel.Dependencies = v
		}
	}
	if uc.history != nil {
		if v, err := uc.history.ListHistory(ctx, id); err != nil {
			uc.l.Warnf(ctx, "uc.Detail history %d: %v", id, err)
		} else if v != nil {
			rel.History = v
		}
	}

	children, err := uc.repo.ListItemDetails(ctx, repo.ListOptions{ParentItemID: &id})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Detail related items %d: %v", id, err)
	} else {
		rel.RelatedItems = children
	}
	return rel
}
