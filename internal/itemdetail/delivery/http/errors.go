package http

import (
	"errors"
	"net/http"

	"item-details-service/internal/itemdetail"
	pkgErrors "item-details-service/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "request body must be a JSON object")

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
	case errors.Is(err, itemdetail.ErrPermissionDenied):
		return pkgErrors.NewHTTPError(http.StatusForbidden, "permission denied")
	case errors.Is(err, itemdetail.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item detail not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
