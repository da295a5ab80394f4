package usecase

import (
	"context"
	"errors"

	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
)

// List returns every ItemDetail, newest first.
func (uc *implUseCase) List(ctx context.Context, input itemdetail.ListInput) (itemdetail.ListOutput, error) {
	if err := uc.checkRead(input.Scope); err != nil {
		return itemdetail.ListOutput{}, err
	}

	details, err := uc.repo.ListItemDetails(ctx, repo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItemDetails: %v", err)
		return itemdetail.ListOutput{}, err
	}
	return itemdetail.ListOutput{ItemDetails: details}, nil
}

// Delete hard-deletes the record, then runs the hooks best-effort.
func (uc *implUseCase) Delete(ctx context.Context, input itemdetail.DeleteInput) error {
	if err := uc.checkWrite(input.Scope); err != nil {
		return err
	}

	deleted, err := uc.repo.DeleteItemDetail(ctx, repo.DeleteOptions{ID: input.ID})
	if err != nil {
		if !errors.Is(err, itemdetail.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Delete DeleteItemDetail: %v", err)
		}
		return err
	}

	uc.runHooks(ctx, itemdetail.Event{
		Action:     itemdetail.ActionDeleted,
		ItemID:     deleted.ID,
		Before:     &deleted,
		Actor:      input.Scope.UserID,
		OccurredAt: uc.now(),
	})
	return nil
}
