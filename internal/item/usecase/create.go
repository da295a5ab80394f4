package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"item-details-service/internal/item"
	repo "item-details-service/internal/item/repository"
	pkgErrors "item-details-service/pkg/errors"
)

// Create validates the name and persists a new Item.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	if err := uc.checkWrite(input.Scope); err != nil {
		uc.l.Warnf(ctx, "uc.Create: %s denied for role %q", input.Scope.UserID, input.Scope.Role)
		return item.CreateItemOutput{}, err
	}

	name, err := uc.validateName(input.Name)
	if err != nil {
		return item.CreateItemOutput{}, err
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:      name,
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: created}, nil
}

// validateName returns the trimmed name or a ValidationError on the "name" field.
func (uc *implUseCase) validateName(raw *string) (string, error) {
	if raw == nil {
		return "", pkgErrors.FieldError("name", "is required")
	}
	name := strings.TrimSpace(*raw)
	if name == "" {
		return "", pkgErrors.FieldError("name", "must not be blank")
	}
	if utf8.RuneCountInString(name) > item.NameMaxLength {
		return "", pkgErrors.FieldError("name", fmt.Sprintf("must be at most %d characters", item.NameMaxLength))
	}
	return name, nil
}
