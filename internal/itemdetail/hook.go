package itemdetail

import (
	"context"
	"time"
)

// Action names the mutation that produced an Event.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event describes a committed mutation. Before is nil for creates, After is nil for deletes.
type Event struct {
	Action     Action
	ItemID     int64
	Before     *ItemDetail
	After      *ItemDetail
	Actor      string
	Changes    []string
	OccurredAt time.Time
}

// Hook is a named collaborator invoked after a mutation commits.
// A returned error is logged and never fails the mutation.
type Hook interface {
	Name() string
	Handle(ctx context.Context, evt Event) error
}
