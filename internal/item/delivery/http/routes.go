package http

import (
	"github.com/gin-gonic/gin"

	"item-details-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods under rg
// (mounted at /api/items). Every route requires an authenticated scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.Auth(), h.List)
	rg.POST("", mw.Auth(), h.Create)
	rg.DELETE("/:id", mw.Auth(), h.Delete)
}
