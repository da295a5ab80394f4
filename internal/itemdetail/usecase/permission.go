package usecase

import (
	"item-details-service/internal/itemdetail"
	"item-details-service/internal/model"
)

func (uc *implUseCase) checkRead(sc model.Scope) error {
	if !sc.AtLeast(model.RoleViewer) {
		return itemdetail.ErrPermissionDenied
	}
	return nil
}

func (uc *implUseCase) checkWrite(sc model.Scope) error {
	if !sc.CanWrite() {
		return itemdetail.ErrPermissionDenied
	}
	return nil
}
