package usecase

import (
	"context"

	"item-details-service/internal/itemdetail"
)

// runHooks invokes every hook in order. Failures and panics are logged and
// never reach the caller.
func (uc *implUseCase) runHooks(ctx context.Context, evt itemdetail.Event) {
	for _, h := range uc.hooks {
		uc.runHook(ctx, h, evt)
	}
}

func (uc *implUseCase) runHook(ctx context.Context, h itemdetail.Hook, evt itemdetail.Event) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "hook %s panicked on %s of %d: %v", h.Name(), evt.Action, evt.ItemID, r)
		}
	}()
	if err := h.Handle(ctx, evt); err != nil {
		uc.l.Warnf(ctx, "hook %s failed on %s of %d: %v", h.Name(), evt.Action, evt.ItemID, err)
	}
}
