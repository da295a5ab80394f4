package http

import (
	"github.com/gin-gonic/gin"

	"item-details-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods under rg
// (mounted at /api/items, shared with the item routes).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/details", mw.Auth(), h.List)
	rg.POST("/details", mw.Auth(), h.Create)
	rg.GET("/:id/details", mw.Auth(), h.Detail)
	rg.PUT("/:id/details", mw.Auth(), h.Update)
	rg.DELETE("/:id/details", mw.Auth(), h.Delete)
}
