package sqlite

import (
	"database/sql"
	"encoding/json"
	"strings"

	configSQLite "item-details-service/config/sqlite"
	"item-details-service/internal/itemdetail"
)

const detailColumns = `id, name, description, category, priority, status, assignee, location,
	workflow_stage, tags, custom_fields, metadata, dependencies, external_refs, linked_items,
	reminder_settings, attachment_ids, due_date, estimated_hours, budget, approval_required,
	template_id, parent_item_id, created_by, created_at, updated_at`

// column binds one writable column to the Fields value that feeds it.
type column struct {
	name  string
	value func(f itemdetail.Fields) (any, bool)
}

// writableColumns is the allow-list of columns callers may set.
// SET and INSERT clauses are built from it and nothing else.
var writableColumns = []column{
	{"name", func(f itemdetail.Fields) (any, bool) { return stringArg(f.Name) }},
	{"description", func(f itemdetail.Fields) (any, bool) { return stringArg(f.Description) }},
	{"category", func(f itemdetail.Fields) (any, bool) { return stringArg(f.Category) }},
	{"priority", func(f itemdetail.Fields) (any, bool) { return stringArg(f.Priority) }},
	{"status", func(f itemdetail.Fields) (any, bool) { return stringArg(f.Status) }},
	{"assignee", func(f itemdetail.Fields) (any, bool) { return stringArg(f.Assignee) }},
	{"location", func(f itemdetail.Fields) (any, bool) { return stringArg(f.Location) }},
	{"workflow_stage", func(f itemdetail.Fields) (any, bool) { return stringArg(f.WorkflowStage) }},
	{"tags", func(f itemdetail.Fields) (any, bool) { return rawArg(f.Tags) }},
	{"custom_fields", func(f itemdetail.Fields) (any, bool) { return rawArg(f.CustomFields) }},
	{"metadata", func(f itemdetail.Fields) (any, bool) { return rawArg(f.Metadata) }},
	{"dependencies", func(f itemdetail.Fields) (any, bool) { return rawArg(f.Dependencies) }},
	{"external_refs", func(f itemdetail.Fields) (any, bool) { return rawArg(f.ExternalRefs) }},
	{"linked_items", func(f itemdetail.Fields) (any, bool) { return rawArg(f.LinkedItems) }},
	{"reminder_settings", func(f itemdetail.Fields) (any, bool) { return rawArg(f.ReminderSettings) }},
	{"attachment_ids", func(f itemdetail.Fields) (any, bool) { return rawArg(f.AttachmentIDs) }},
	{"due_date", func(f itemdetail.Fields) (any, bool) { return stringArg(f.DueDate) }},
	{"estimated_hours", func(f itemdetail.Fields) (any, bool) { return floatArg(f.EstimatedHours) }},
	{"budget", func(f itemdetail.Fields) (any, bool) { return floatArg(f.Budget) }},
	{"approval_required", func(f itemdetail.Fields) (any, bool) { return boolArg(f.ApprovalRequired) }},
	{"template_id", func(f itemdetail.Fields) (any, bool) { return int64Arg(f.TemplateID) }},
	{"parent_item_id", func(f itemdetail.Fields) (any, bool) { return int64Arg(f.ParentItemID) }},
}

func stringArg(p *string) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

func rawArg(r json.RawMessage) (any, bool) {
	if r == nil {
		return nil, false
	}
	return string(r), true
}

func floatArg(p *float64) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

func int64Arg(p *int64) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}

func boolArg(p *bool) (any, bool) {
	if p == nil {
		return nil, false
	}
	if *p {
		return 1, true
	}
	return 0, true
}

// buildInsert returns the column list, placeholders and args for the supplied fields.
func buildInsert(f itemdetail.Fields) (cols []string, placeholders []string, args []any) {
	for _, c := range writableColumns {
		v, ok := c.value(f)
		if !ok {
			continue
		}
		cols = append(cols, c.name)
		placeholders = append(placeholders, "?")
		args = append(args, v)
	}
	return cols, placeholders, args
}

// buildSet returns "col = ?" assignments and args for the supplied fields.
func buildSet(f itemdetail.Fields) (sets []string, args []any) {
	for _, c := range writableColumns {
		v, ok := c.value(f)
		if !ok {
			continue
		}
		sets = append(sets, c.name+" = ?")
		args = append(args, v)
	}
	return sets, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItemDetail(row rowScanner) (itemdetail.ItemDetail, error) {
	var (
		d                                                 itemdetail.ItemDetail
		description, category, priority, status           sql.NullString
		assignee, location, workflowStage                 sql.NullString
		tags, customFields, metadata, dependencies        sql.NullString
		externalRefs, linkedItems, reminders, attachments sql.NullString
		dueDate, createdBy                                sql.NullString
		estimatedHours, budget                            sql.NullFloat64
		approval                                          int64
		templateID, parentItemID                          sql.NullInt64
		createdAt, updatedAt                              string
	)
	err := row.Scan(
		&d.ID, &d.Name, &description, &category, &priority, &status, &assignee, &location,
		&workflowStage, &tags, &customFields, &metadata, &dependencies, &externalRefs, &linkedItems,
		&reminders, &attachments, &dueDate, &estimatedHours, &budget, &approval,
		&templateID, &parentItemID, &createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return itemdetail.ItemDetail{}, err
	}

	d.Description = stringPtr(description)
	if category.Valid {
		v := itemdetail.Category(category.String)
		d.Category = &v
	}
	if priority.Valid {
		v := itemdetail.Priority(priority.String)
		d.Priority = &v
	}
	if status.Valid {
		v := itemdetail.Status(status.String)
		d.Status = &v
	}
	d.Assignee = stringPtr(assignee)
	d.Location = stringPtr(location)
	d.WorkflowStage = stringPtr(workflowStage)

	d.Tags = rawValue(tags)
	d.CustomFields = rawValue(customFields)
	d.Metadata = rawValue(metadata)
	d.Dependencies = rawValue(dependencies)
	d.ExternalRefs = rawValue(externalRefs)
	d.LinkedItems = rawValue(linkedItems)
	d.ReminderSettings = rawValue(reminders)
	d.AttachmentIDs = rawValue(attachments)

	d.DueDate = stringPtr(dueDate)
	if estimatedHours.Valid {
		v := estimatedHours.Float64
		d.EstimatedHours = &v
	}
	if budget.Valid {
		v := budget.Float64
		d.Budget = &v
	}
	d.ApprovalRequired = approval != 0
	if templateID.Valid {
		v := templateID.Int64
		d.TemplateID = &v
	}
	if parentItemID.Valid {
		v := parentItemID.Int64
		d.ParentItemID = &v
	}
	d.CreatedBy = createdBy.String

	if d.CreatedAt, err = configSQLite.ParseTime(createdAt); err != nil {
		return itemdetail.ItemDetail{}, err
	}
	if d.UpdatedAt, err = configSQLite.ParseTime(updatedAt); err != nil {
		return itemdetail.ItemDetail{}, err
	}
	return d, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func rawValue(ns sql.NullString) json.RawMessage {
	if !ns.Valid || strings.TrimSpace(ns.String) == "" {
		return nil
	}
	return json.RawMessage(ns.String)
}
