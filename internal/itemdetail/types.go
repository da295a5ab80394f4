package itemdetail

import (
	"encoding/json"
	"time"

	"item-details-service/internal/model"
)

// NameMaxLength bounds ItemDetail names.
const NameMaxLength = 255

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryUrgent   Category = "urgent"
)

var ValidCategories = []Category{CategoryWork, CategoryPersonal, CategoryUrgent}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var ValidPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var ValidStatuses = []Status{StatusActive, StatusPending, StatusCompleted, StatusCancelled}

// ItemDetail is the extended record. Nil pointers and nil raw values are unset columns.
type ItemDetail struct {
	ID            int64
	Name          string
	Description   *string
	Category      *Category
	Priority      *Priority
	Status        *Status
	Assignee      *string
	Location      *string
	WorkflowStage *string

	Tags             json.RawMessage
	CustomFields     json.RawMessage
	Metadata         json.RawMessage
	Dependencies     json.RawMessage
	ExternalRefs     json.RawMessage
	LinkedItems      json.RawMessage
	ReminderSettings json.RawMessage
	AttachmentIDs    json.RawMessage

	// DueDate is a calendar date in DateLayout.
	DueDate          *string
	EstimatedHours   *float64
	Budget           *float64
	ApprovalRequired bool
	TemplateID       *int64
	ParentItemID     *int64

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fields is the set of writable ItemDetail fields supplied by a caller.
// A nil field was not supplied.
type Fields struct {
	Name          *string
	Description   *string
	Category      *string
	Priority      *string
	Status        *string
	Assignee      *string
	Location      *string
	WorkflowStage *string

	Tags             json.RawMessage
	CustomFields     json.RawMessage
	Metadata         json.RawMessage
	Dependencies     json.RawMessage
	ExternalRefs     json.RawMessage
	LinkedItems      json.RawMessage
	ReminderSettings json.RawMessage
	AttachmentIDs    json.RawMessage

	DueDate          *string
	EstimatedHours   *float64
	Budget           *float64
	ApprovalRequired *bool
	TemplateID       *int64
	ParentItemID     *int64
}

// HistoryEntry is one audit record for an ItemDetail.
type HistoryEntry struct {
	ItemID    int64
	Version   int
	Action    Action
	Actor     string
	Changes   []string
	CreatedAt time.Time
}

// Related is the envelope of data attached to an ItemDetail by collaborators.
type Related struct {
	Attachments  []json.RawMessage
	Comments     []json.RawMessage
	Dependencies []json.RawMessage
	History      []HistoryEntry
	RelatedItems []ItemDetail
}

// --- UseCase Inputs ---

type CreateInput struct {
	Scope  model.Scope
	Fields Fields
}

type DetailInput struct {
	Scope   model.Scope
	ID      int64
	NoCache bool
}

type UpdateInput struct {
	Scope  model.Scope
	ID     int64
	Fields Fields
}

type DeleteInput struct {
	Scope model.Scope
	ID    int64
}

type ListInput struct {
	Scope model.Scope
}

// --- UseCase Outputs ---

type CreateOutput struct {
	ItemDetail ItemDetail
}

type DetailOutput struct {
	ItemDetail ItemDetail
	Related    Related
}

type UpdateOutput struct {
	ItemDetail ItemDetail
}

type ListOutput struct {
	ItemDetails []ItemDetail
}
