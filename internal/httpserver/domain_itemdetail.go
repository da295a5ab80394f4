package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"item-details-service/internal/itemdetail"
	detailHTTP "item-details-service/internal/itemdetail/delivery/http"
	"item-details-service/internal/itemdetail/hook"
	detailRedis "item-details-service/internal/itemdetail/repository/redis"
	detailRepo "item-details-service/internal/itemdetail/repository/sqlite"
	detailUC "item-details-service/internal/itemdetail/usecase"
	"item-details-service/internal/middleware"
)

// setupItemDetailDomain wires the item details use case and its hooks.
// Hooks run in registration order: audit, cache, reminder, notify.
func (srv HTTPServer) setupItemDetailDomain(api *gin.RouterGroup, mw middleware.Middleware) error {
	ctx := context.Background()

	repo := detailRepo.New(srv.db, srv.l)
	history := detailRepo.NewHistory(srv.db, srv.l)

	opt := detailUC.Options{
		CacheTTL: srv.cacheTTL,
		Dates:    srv.dates,
		Hooks:    []itemdetail.Hook{hook.NewAudit(history)},
		History:  history,
	}

	if srv.redis != nil {
		cache := detailRedis.New(srv.redis, srv.l)
		opt.Cache = cache
		opt.Hooks = append(opt.Hooks, hook.NewCacheInvalidation(cache))
		srv.l.Infof(ctx, "Item detail cache enabled (ttl=%s)", srv.cacheTTL)
	}
	if srv.calendar != nil {
		opt.Hooks = append(opt.Hooks, hook.NewReminder(srv.calendar, srv.calendarID))
		srv.l.Infof(ctx, "Due date reminders enabled on calendar %q", srv.calendarID)
	}
	if srv.sender != nil {
		opt.Hooks = append(opt.Hooks, hook.NewNotify(srv.sender, srv.chatID))
		srv.l.Info(ctx, "Telegram change notifications enabled")
	}

	uc := detailUC.New(repo, srv.l, opt)
	h := detailHTTP.New(srv.l, uc)

	// /api/items/details and /api/items/:id/details
	detailHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item detail domain registered with %d hooks", len(opt.Hooks))
	return nil
}
