package hook

import (
	"context"
	"fmt"
	"strings"

	"item-details-service/internal/itemdetail"
)

// Sender delivers a text message to a chat. *telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type notify struct {
	sender Sender
	chatID int64
}

// NewNotify posts a short summary of every mutation to chatID.
func NewNotify(sender Sender, chatID int64) itemdetail.Hook {
	return &notify{sender: sender, chatID: chatID}
}

func (h *notify) Name() string { return "notify" }

func (h *notify) Handle(ctx context.Context, evt itemdetail.Event) error {
	return h.sender.SendMessage(ctx, h.chatID, formatEvent(evt))
}

func formatEvent(evt itemdetail.Event) string {
	name := ""
	switch {
	case evt.After != nil:
		name = evt.After.Name
	case evt.Before != nil:
		name = evt.Before.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Item detail #%d %q %s by %s", evt.ItemID, name, evt.Action, evt.Actor)
	if evt.Action == itemdetail.ActionUpdated && len(evt.Changes) > 0 {
		fmt.Fprintf(&b, " (fields: %s)", strings.Join(evt.Changes, ", "))
	}
	if evt.After != nil && evt.After.DueDate != nil {
		fmt.Fprintf(&b, "\nDue: %s", *evt.After.DueDate)
	}
	return b.String()
}
