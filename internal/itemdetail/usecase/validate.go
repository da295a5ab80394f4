package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"item-details-service/internal/itemdetail"
	pkgErrors "item-details-service/pkg/errors"
)

// validateFields checks every supplied field and returns the normalized set.
// id is the record being updated, 0 on create.
func (uc *implUseCase) validateFields(f itemdetail.Fields, creating bool, id int64) (itemdetail.Fields, error) {
	v := pkgErrors.NewValidationError()
	out := f

	switch {
	case f.Name == nil:
		if creating {
			v.Add("name", "is required")
		}
	default:
		name := strings.TrimSpace(*f.Name)
		switch {
		case name == "":
			v.Add("name", "must not be blank")
		case utf8.RuneCountInString(name) > itemdetail.NameMaxLength:
			v.Add("name", fmt.Sprintf("must be at most %d characters", itemdetail.NameMaxLength))
		default:
			out.Name = &name
		}
	}

	if f.Category != nil && !isOneOf(itemdetail.Category(*f.Category), itemdetail.ValidCategories) {
		v.Add("category", pkgErrors.InvalidValueMessage(itemdetail.Category(*f.Category), itemdetail.ValidCategories))
	}
	if f.Priority != nil && !isOneOf(itemdetail.Priority(*f.Priority), itemdetail.ValidPriorities) {
		v.Add("priority", pkgErrors.InvalidValueMessage(itemdetail.Priority(*f.Priority), itemdetail.ValidPriorities))
	}
	if f.Status != nil && !isOneOf(itemdetail.Status(*f.Status), itemdetail.ValidStatuses) {
		v.Add("status", pkgErrors.InvalidValueMessage(itemdetail.Status(*f.Status), itemdetail.ValidStatuses))
	}

	if f.DueDate != nil {
		due, msg := uc.resolveDueDate(*f.DueDate)
		if msg != "" {
			v.Add("due_date", msg)
		} else {
			out.DueDate = &due
		}
	}

	if f.EstimatedHours != nil && *f.EstimatedHours < 0 {
		v.Add("estimated_hours", "must not be negative")
	}
	if f.Budget != nil && *f.Budget < 0 {
		v.Add("budget", "must not be negative")
	}

	if f.TemplateID != nil && *f.TemplateID <= 0 {
		v.Add("template_id", "must be a positive integer")
	}
	if f.ParentItemID != nil {
		switch {
		case *f.ParentItemID <= 0:
			v.Add("parent_item_id", "must be a positive integer")
		case id != 0 && *f.ParentItemID == id:
			v.Add("parent_item_id", "must not reference the record itself")
		}
	}

	structured := []struct {
		field string
		raw   *json.RawMessage
	}{
		{"tags", &out.Tags},
		{"custom_fields", &out.CustomFields},
		{"metadata", &out.Metadata},
		{"dependencies", &out.Dependencies},
		{"external_refs", &out.ExternalRefs},
		{"linked_items", &out.LinkedItems},
		{"reminder_settings", &out.ReminderSettings},
		{"attachment_ids", &out.AttachmentIDs},
	}
	for _, s := range structured {
		if *s.raw == nil {
			continue
		}
		compacted, err := compactJSON(*s.raw)
		if err != nil {
			v.Add(s.field, "must be valid JSON")
			continue
		}
		*s.raw = compacted
	}

	if err := v.OrNil(); err != nil {
		return itemdetail.Fields{}, err
	}
	return out, nil
}

// resolveDueDate normalizes value to a calendar date not earlier than today.
// It returns a validation message on failure.
func (uc *implUseCase) resolveDueDate(value string) (string, string) {
	now := uc.now()
	due, err := uc.dates.ParseDate(value, now)
	if err != nil {
		return "", "must be a date (YYYY-MM-DD, RFC 3339, or a relative expression such as \"tomorrow\")"
	}
	if due.Before(uc.dates.StartOfDay(now)) {
		return "", "must not be in the past"
	}
	return uc.dates.Format(due), ""
}

func isOneOf[T comparable](v T, valid []T) bool {
	for _, c := range valid {
		if v == c {
			return true
		}
	}
	return false
}

func compactJSON(raw json.RawMessage) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}
