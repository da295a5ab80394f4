package usecase

import (
	"context"

	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
)

// Create checks permission, validates the fields and persists a new ItemDetail.
func (uc *implUseCase) Create(ctx context.Context, input itemdetail.CreateInput) (itemdetail.CreateOutput, error) {
	if err := uc.checkWrite(input.Scope); err != nil {
		return itemdetail.CreateOutput{}, err
	}

	fields, err := uc.validateFields(input.Fields, true, 0)
	if err != nil {
		return itemdetail.CreateOutput{}, err
	}

	now := uc.now()
	created, err := uc.repo.CreateItemDetail(ctx, repo.CreateOptions{
		Fields:    fields,
		CreatedBy: input.Scope.UserID,
		CreatedAt: now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItemDetail: %v", err)
		return itemdetail.CreateOutput{}, err
	}

	uc.runHooks(ctx, itemdetail.Event{
		Action:     itemdetail.ActionCreated,
		ItemID:     created.ID,
		After:      &created,
		Actor:      input.Scope.UserID,
		Changes:    fields.Supplied(),
		OccurredAt: now,
	})

	return itemdetail.CreateOutput{ItemDetail: created}, nil
}
