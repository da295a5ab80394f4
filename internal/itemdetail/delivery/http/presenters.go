package http

import (
	"encoding/json"

	"item-details-service/internal/itemdetail"
	"item-details-service/internal/model"
	"item-details-service/pkg/response"
)

// --- Request DTOs ---

// fieldsDoc documents the accepted body for swag. Bodies are decoded by
// processFields; camelCase aliases of the multi-word keys are accepted too.
type fieldsDoc struct {
	Name             string          `json:"name" example:"Launch"`
	Description      string          `json:"description"`
	Category         string          `json:"category" enums:"work,personal,urgent"`
	Priority         string          `json:"priority" enums:"low,medium,high,critical"`
	Status           string          `json:"status" enums:"active,pending,completed,cancelled"`
	Assignee         string          `json:"assignee"`
	Location         string          `json:"location"`
	WorkflowStage    string          `json:"workflow_stage"`
	Tags             json.RawMessage `json:"tags" swaggertype:"object"`
	CustomFields     json.RawMessage `json:"custom_fields" swaggertype:"object"`
	Metadata         json.RawMessage `json:"metadata" swaggertype:"object"`
	Dependencies     json.RawMessage `json:"dependencies" swaggertype:"object"`
	ExternalRefs     json.RawMessage `json:"external_refs" swaggertype:"object"`
	LinkedItems      json.RawMessage `json:"linked_items" swaggertype:"object"`
	ReminderSettings json.RawMessage `json:"reminder_settings" swaggertype:"object"`
	AttachmentIDs    json.RawMessage `json:"attachment_ids" swaggertype:"object"`
	DueDate          string          `json:"due_date" example:"2030-01-31"`
	EstimatedHours   float64         `json:"estimated_hours"`
	Budget           float64         `json:"budget"`
	ApprovalRequired bool            `json:"approval_required"`
	TemplateID       int64           `json:"template_id"`
	ParentItemID     int64           `json:"parent_item_id"`
}

type createReq struct {
	scope  model.Scope
	fields itemdetail.Fields
}

func (r createReq) toInput() itemdetail.CreateInput {
	return itemdetail.CreateInput{Scope: r.scope, Fields: r.fields}
}

type detailReq struct {
	scope   model.Scope
	id      int64
	noCache bool
}

func (r detailReq) toInput() itemdetail.DetailInput {
	return itemdetail.DetailInput{Scope: r.scope, ID: r.id, NoCache: r.noCache}
}

type updateReq struct {
	scope  model.Scope
	id     int64
	fields itemdetail.Fields
}

func (r updateReq) toInput() itemdetail.UpdateInput {
	return itemdetail.UpdateInput{Scope: r.scope, ID: r.id, Fields: r.fields}
}

type deleteReq struct {
	scope model.Scope
	id    int64
}

func (r deleteReq) toInput() itemdetail.DeleteInput {
	return itemdetail.DeleteInput{Scope: r.scope, ID: r.id}
}

// --- Response DTOs ---

type detailResp struct {
	ID               int64                `json:"id"`
	Name             string               `json:"name"`
	Description      *string              `json:"description"`
	Category         *itemdetail.Category `json:"category" swaggertype:"string"`
	Priority         *itemdetail.Priority `json:"priority" swaggertype:"string"`
	Status           *itemdetail.Status   `json:"status" swaggertype:"string"`
	Assignee         *string              `json:"assignee"`
	Location         *string              `json:"location"`
	WorkflowStage    *string              `json:"workflow_stage"`
	Tags             json.RawMessage      `json:"tags" swaggertype:"object"`
	CustomFields     json.RawMessage      `json:"custom_fields" swaggertype:"object"`
	Metadata         json.RawMessage      `json:"metadata" swaggertype:"object"`
	Dependencies     json.RawMessage      `json:"dependencies" swaggertype:"object"`
	ExternalRefs     json.RawMessage      `json:"external_refs" swaggertype:"object"`
	LinkedItems      json.RawMessage      `json:"linked_items" swaggertype:"object"`
	ReminderSettings json.RawMessage      `json:"reminder_settings" swaggertype:"object"`
	AttachmentIDs    json.RawMessage      `json:"attachment_ids" swaggertype:"object"`
	DueDate          *string              `json:"due_date"`
	EstimatedHours   *float64             `json:"estimated_hours"`
	Budget           *float64             `json:"budget"`
	ApprovalRequired bool                 `json:"approval_required"`
	TemplateID       *int64               `json:"template_id"`
	ParentItemID     *int64               `json:"parent_item_id"`
	CreatedBy        string               `json:"created_by"`
	CreatedAt        response.DateTime    `json:"created_at" swaggertype:"string"`
	UpdatedAt        response.DateTime    `json:"updated_at" swaggertype:"string"`
}

func newDetailResp(d itemdetail.ItemDetail) detailResp {
	return detailResp{
		ID:               d.ID,
		Name:             d.Name,
		Description:      d.Description,
		Category:         d.Category,
		Priority:         d.Priority,
		Status:           d.Status,
		Assignee:         d.Assignee,
		Location:         d.Location,
		WorkflowStage:    d.WorkflowStage,
		Tags:             d.Tags,
		CustomFields:     d.CustomFields,
		Metadata:         d.Metadata,
		Dependencies:     d.Dependencies,
		ExternalRefs:     d.ExternalRefs,
		LinkedItems:      d.LinkedItems,
		ReminderSettings: d.ReminderSettings,
		AttachmentIDs:    d.AttachmentIDs,
		DueDate:          d.DueDate,
		EstimatedHours:   d.EstimatedHours,
		Budget:           d.Budget,
		ApprovalRequired: d.ApprovalRequired,
		TemplateID:       d.TemplateID,
		ParentItemID:     d.ParentItemID,
		CreatedBy:        d.CreatedBy,
		CreatedAt:        response.DateTime(d.CreatedAt),
		UpdatedAt:        response.DateTime(d.UpdatedAt),
	}
}

func newDetailListResp(details []itemdetail.ItemDetail) []detailResp {
	out := make([]detailResp, 0, len(details))
	for _, d := range details {
		out = append(out, newDetailResp(d))
	}
	return out
}

type historyResp struct {
	Version   int               `json:"version"`
	Action    string            `json:"action"`
	Actor     string            `json:"actor"`
	Changes   []string          `json:"changes"`
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string"`
}

type relatedResp struct {
	Attachments  []json.RawMessage `json:"attachments" swaggertype:"array,object"`
	Comments     []json.RawMessage `json:"comments" swaggertype:"array,object"`
	Dependencies []json.RawMessage `json:"dependencies" swaggertype:"array,object"`
	History      []historyResp     `json:"history"`
	RelatedItems []detailResp      `json:"related_items"`
}

type detailWithRelatedResp struct {
	detailResp
	Related relatedResp `json:"related"`
}

func newDetailWithRelatedResp(o itemdetail.DetailOutput) detailWithRelatedResp {
	history := make([]historyResp, 0, len(o.Related.History))
	for _, e := range o.Related.History {
		changes := e.Changes
		if changes == nil {
			changes = []string{}
		}
		history = append(history, historyResp{
			Version:   e.Version,
			Action:    string(e.Action),
			Actor:     e.Actor,
			Changes:   changes,
			CreatedAt: response.DateTime(e.CreatedAt),
		})
	}

	return detailWithRelatedResp{
		detailResp: newDetailResp(o.ItemDetail),
		Related: relatedResp{
			Attachments:  nonNil(o.Related.Attachments),
			Comments:     nonNil(o.Related.Comments),
			Dependencies: nonNil(o.Related.Dependencies),
			History:      history,
			RelatedItems: newDetailListResp(o.Related.RelatedItems),
		},
	}
}

func nonNil(v []json.RawMessage) []json.RawMessage {
	if v == nil {
		return []json.RawMessage{}
	}
	return v
}

type deleteResp struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func newDeleteResp(id int64) deleteResp {
	return deleteResp{
		Message: "item detail deleted",
		ID:      id,
	}
}
