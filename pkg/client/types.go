package client

import (
	"encoding/json"
	"time"
)

// Item is a minimal named record.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemDetail is the extended record. Optional fields are nil when unset.
type ItemDetail struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Description      *string         `json:"description"`
	Category         *string         `json:"category"`
	Priority         *string         `json:"priority"`
	Status           *string         `json:"status"`
	Assignee         *string         `json:"assignee"`
	Location         *string         `json:"location"`
	WorkflowStage    *string         `json:"workflow_stage"`
	Tags             json.RawMessage `json:"tags"`
	CustomFields     json.RawMessage `json:"custom_fields"`
	Metadata         json.RawMessage `json:"metadata"`
	Dependencies     json.RawMessage `json:"dependencies"`
	ExternalRefs     json.RawMessage `json:"external_refs"`
	LinkedItems      json.RawMessage `json:"linked_items"`
	ReminderSettings json.RawMessage `json:"reminder_settings"`
	AttachmentIDs    json.RawMessage `json:"attachment_ids"`
	DueDate          *string         `json:"due_date"`
	EstimatedHours   *float64        `json:"estimated_hours"`
	Budget           *float64        `json:"budget"`
	ApprovalRequired bool            `json:"approval_required"`
	TemplateID       *int64          `json:"template_id"`
	ParentItemID     *int64          `json:"parent_item_id"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// HistoryEntry is one audit record of an ItemDetail.
type HistoryEntry struct {
	Version   int       `json:"version"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Changes   []string  `json:"changes"`
	CreatedAt time.Time `json:"created_at"`
}

// Related groups the collections returned with a single ItemDetail.
type Related struct {
	Attachments  []json.RawMessage `json:"attachments"`
	Comments     []json.RawMessage `json:"comments"`
	Dependencies []json.RawMessage `json:"dependencies"`
	History      []HistoryEntry    `json:"history"`
	RelatedItems []ItemDetail      `json:"related_items"`
}

// ItemDetailWithRelated is the body of GET /api/items/:id/details.
type ItemDetailWithRelated struct {
	ItemDetail
	Related Related `json:"related"`
}

// Fields are the writable ItemDetail fields. Nil fields are not sent.
type Fields struct {
	Name             *string         `json:"name,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Category         *string         `json:"category,omitempty"`
	Priority         *string         `json:"priority,omitempty"`
	Status           *string         `json:"status,omitempty"`
	Assignee         *string         `json:"assignee,omitempty"`
	Location         *string         `json:"location,omitempty"`
	WorkflowStage    *string         `json:"workflow_stage,omitempty"`
	Tags             json.RawMessage `json:"tags,omitempty"`
	CustomFields     json.RawMessage `json:"custom_fields,omitempty"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
	Dependencies     json.RawMessage `json:"dependencies,omitempty"`
	ExternalRefs     json.RawMessage `json:"external_refs,omitempty"`
	LinkedItems      json.RawMessage `json:"linked_items,omitempty"`
	ReminderSettings json.RawMessage `json:"reminder_settings,omitempty"`
	AttachmentIDs    json.RawMessage `json:"attachment_ids,omitempty"`
	DueDate          *string         `json:"due_date,omitempty"`
	EstimatedHours   *float64        `json:"estimated_hours,omitempty"`
	Budget           *float64        `json:"budget,omitempty"`
	ApprovalRequired *bool           `json:"approval_required,omitempty"`
	TemplateID       *int64          `json:"template_id,omitempty"`
	ParentItemID     *int64          `json:"parent_item_id,omitempty"`
}

// Deleted is the acknowledgement returned by both delete endpoints.
type Deleted struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type ListItemsOptions struct{}

type CreateItemOptions struct {
	Name string
}

type DeleteItemOptions struct {
	ID int64
}

type ListItemDetailsOptions struct{}

type GetItemDetailOptions struct {
	ID int64
	// NoCache asks the server to bypass its read cache.
	NoCache bool
}

type CreateItemDetailOptions struct {
	Fields Fields
}

type UpdateItemDetailOptions struct {
	ID     int64
	Fields Fields
}

type DeleteItemDetailOptions struct {
	ID int64
}

// String, Float, Int and Bool return pointers for building Fields literals.
func String(v string) *string { return &v }
func Float(v float64) *float64 { return &v }
func Int(v int64) *int64 { return &v }
func Bool(v bool) *bool { return &v }
