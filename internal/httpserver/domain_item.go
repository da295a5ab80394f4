package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "item-details-service/internal/item/delivery/http"
	itemRepo "item-details-service/internal/item/repository/sqlite"
	itemUC "item-details-service/internal/item/usecase"
	"item-details-service/internal/middleware"
)

// setupItemDomain wires repository, use case and handler for plain items.
func (srv HTTPServer) setupItemDomain(api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := itemRepo.New(srv.db, srv.l)
	uc := itemUC.New(repo, srv.l)
	h := itemHTTP.New(srv.l, uc)

	// GET/POST /api/items, DELETE /api/items/:id
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(context.Background(), "Item domain registered")
	return nil
}
