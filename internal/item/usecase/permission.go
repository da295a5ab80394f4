package usecase

import (
	"item-details-service/internal/item"
	"item-details-service/internal/model"
)

// checkWrite gates Item mutations on the same editor role ItemDetail writes need.
func (uc *implUseCase) checkWrite(sc model.Scope) error {
	if !sc.CanWrite() {
		return item.ErrPermissionDenied
	}
	return nil
}
