package usecase

import (
	"context"
	"errors"

	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
)

// Update validates the supplied fields and merges them into the record.
// Either every supplied field is persisted or none is.
func (uc *implUseCase) Update(ctx context.Context, input itemdetail.UpdateInput) (itemdetail.UpdateOutput, error) {
	if err := uc.checkWrite(input.Scope); err != nil {
		return itemdetail.UpdateOutput{}, err
	}

	fields, err := uc.validateFields(input.Fields, false, input.ID)
	if err != nil {
		return itemdetail.UpdateOutput{}, err
	}

	now := uc.now()
	before, after, err := uc.repo.UpdateItemDetail(ctx, repo.UpdateOptions{
		ID:        input.ID,
		Fields:    fields,
		UpdatedAt: now,
	})
	if err != nil {
		if !errors.Is(err, itemdetail.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Update UpdateItemDetail: %v", err)
		}
		return itemdetail.UpdateOutput{}, err
	}

	uc.runHooks(ctx, itemdetail.Event{
		Action:     itemdetail.ActionUpdated,
		ItemID:     after.ID,
		Before:     &before,
		After:      &after,
		Actor:      input.Scope.UserID,
		Changes:    fields.Supplied(),
		OccurredAt: now,
	})

	return itemdetail.UpdateOutput{ItemDetail: after}, nil
}
