package usecase

import (
	"context"

	"item-details-service/internal/item"
	repo "item-details-service/internal/item/repository"
)

// List returns all Items, newest first.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}
	return item.ListItemsOutput{Items: items}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, input item.DeleteItemInput) error {
	if err := uc.checkWrite(input.Scope); err != nil {
		uc.l.Warnf(ctx, "uc.Delete: %s denied for role %q", input.Scope.UserID, input.Scope.Role)
		return err
	}

	deleted, err := uc.repo.DeleteItem(ctx, repo.DeleteItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	if !deleted {
		return item.ErrItemNotFound
	}
	return nil
}
