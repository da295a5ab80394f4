package http

import (
	"bytes"
	"encoding/json"

	"item-details-service/internal/itemdetail"
)

// fieldAliases maps accepted camelCase keys to their canonical names.
var fieldAliases = map[string]string{
	"workflowStage":    "workflow_stage",
	"customFields":     "custom_fields",
	"externalRefs":     "external_refs",
	"linkedItems":      "linked_items",
	"reminderSettings": "reminder_settings",
	"attachmentIds":    "attachment_ids",
	"dueDate":          "due_date",
	"estimatedHours":   "estimated_hours",
	"approvalRequired": "approval_required",
	"templateId":       "template_id",
	"parentItemId":     "parent_item_id",
}

// fieldDecoder decodes one body value into f. It returns a validation
// message, or "" on success. JSON null leaves the field unset.
type fieldDecoder func(f *itemdetail.Fields, raw json.RawMessage) string

// fieldDecoders is the allow-list of writable body keys.
var fieldDecoders = map[string]fieldDecoder{
	"name":              decodeName,
	"description":       stringField(func(f *itemdetail.Fields) **string { return &f.Description }),
	"category":          stringField(func(f *itemdetail.Fields) **string { return &f.Category }),
	"priority":          stringField(func(f *itemdetail.Fields) **string { return &f.Priority }),
	"status":            stringField(func(f *itemdetail.Fields) **string { return &f.Status }),
	"assignee":          stringField(func(f *itemdetail.Fields) **string { return &f.Assignee }),
	"location":          stringField(func(f *itemdetail.Fields) **string { return &f.Location }),
	"workflow_stage":    stringField(func(f *itemdetail.Fields) **string { return &f.WorkflowStage }),
	"tags":              rawField(func(f *itemdetail.Fields) *json.RawMessage { return &f.Tags }),
	"custom_fields":     rawField(func(f *itemdetail.Fields) *json.RawMessage { return &f.CustomFields }),
	"metadata":          rawField(func(f *itemdetail.Fields) *json.RawMessage { return &f.Metadata }),
	"dependencies":      rawField(func(f *itemdetail.Fields) *json.RawMessage { return &f.Dependencies }),
	"external_refs":     rawField(func(f *itemdetail.Fields) *json.RawMessage { return &f.ExternalRefs }),
	"linked_items":      rawField(func(f *itemdetail.Fields) *json.RawMessage { return &f.LinkedItems }),
	"reminder_settings": rawField(func(f *itemdetail.Fields) *json.RawMessage { return &f.ReminderSettings }),
	"attachment_ids":    rawField(func(f *itemdetail.Fields) *json.RawMessage { return &f.AttachmentIDs }),
	"due_date":          stringField(func(f *itemdetail.Fields) **string { return &f.DueDate }),
	"estimated_hours":   floatField(func(f *itemdetail.Fields) **float64 { return &f.EstimatedHours }),
	"budget":            floatField(func(f *itemdetail.Fields) **float64 { return &f.Budget }),
	"approval_required": boolField(func(f *itemdetail.Fields) **bool { return &f.ApprovalRequired }),
	"template_id":       int64Field(func(f *itemdetail.Fields) **int64 { return &f.TemplateID }),
	"parent_item_id":    int64Field(func(f *itemdetail.Fields) **int64 { return &f.ParentItemID }),
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeName rejects null: a name can be omitted but never cleared.
func decodeName(f *itemdetail.Fields, raw json.RawMessage) string {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return "must be a string"
	}
	f.Name = &s
	return ""
}

func stringField(dst func(f *itemdetail.Fields) **string) fieldDecoder {
	return func(f *itemdetail.Fields, raw json.RawMessage) string {
		if isNull(raw) {
			return ""
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "must be a string"
		}
		*dst(f) = &s
		return ""
	}
}

func rawField(dst func(f *itemdetail.Fields) *json.RawMessage) fieldDecoder {
	return func(f *itemdetail.Fields, raw json.RawMessage) string {
		if isNull(raw) {
			return ""
		}
		*dst(f) = append(json.RawMessage(nil), raw...)
		return ""
	}
}

func floatField(dst func(f *itemdetail.Fields) **float64) fieldDecoder {
	return func(f *itemdetail.Fields, raw json.RawMessage) string {
		if isNull(raw) {
			return ""
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return "must be a number"
		}
		*dst(f) = &v
		return ""
	}
}

func int64Field(dst func(f *itemdetail.Fields) **int64) fieldDecoder {
	return func(f *itemdetail.Fields, raw json.RawMessage) string {
		if isNull(raw) {
			return ""
		}
		var v int64
		if err := json.Unmarshal(raw, &v); err != nil {
			return "must be an integer"
		}
		*dst(f) = &v
		return ""
	}
}

func boolField(dst func(f *itemdetail.Fields) **bool) fieldDecoder {
	return func(f *itemdetail.Fields, raw json.RawMessage) string {
		if isNull(raw) {
			return ""
		}
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			return "must be a boolean"
		}
		*dst(f) = &v
		return ""
	}
}
