package http

import (
	"item-details-service/internal/itemdetail"
	"item-details-service/pkg/log"
)

type handler struct {
	l  log.Logger
	uc itemdetail.UseCase
}

// New creates a new HTTP handler for the itemdetail domain.
func New(l log.Logger, uc itemdetail.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
