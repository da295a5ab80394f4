package http

import (
	"errors"
	"net/http"

	"item-details-service/internal/item"
	pkgErrors "item-details-service/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "request body must be a JSON object")
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become ErrInternalServerError.
func (h *handler) mapError(err error) error {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}

	var v *pkgErrors.ValidationError
	if errors.As(err, &v) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, pkgErrors.ErrValidation.Error()).WithDetails(v.Fields)
	}

	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case errors.Is(err, item.ErrPermissionDenied):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "permission denied")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
