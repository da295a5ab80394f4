package itemdetail

import "errors"

var (
	ErrNotFound         = errors.New("item detail not found")
	ErrPermissionDenied = errors.New("permission denied")
)
