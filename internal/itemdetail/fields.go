package itemdetail

// Supplied returns the wire names of the fields set in f, in a fixed order.
func (f Fields) Supplied() []string {
	var names []string
	add := func(name string, set bool) {
		if set {
			names = append(names, name)
		}
	}
	add("name", f.Name != nil)
	add("description", f.Description != nil)
	add("category", f.Category != nil)
	add("priority", f.Priority != nil)
	add("status", f.Status != nil)
	add("assignee", f.Assignee != nil)
	add("location", f.Location != nil)
	add("workflow_stage", f.WorkflowStage != nil)
	add("tags", f.Tags != nil)
	add("custom_fields", f.CustomFields != nil)
	add("metadata", f.Metadata != nil)
	add("dependencies", f.Dependencies != nil)
	add("external_refs", f.ExternalRefs != nil)
	add("linked_items", f.LinkedItems != nil)
	add("reminder_settings", f.ReminderSettings != nil)
	add("attachment_ids", f.AttachmentIDs != nil)
	add("due_date", f.DueDate != nil)
	add("estimated_hours", f.EstimatedHours != nil)
	add("budget", f.Budget != nil)
	add("approval_required", f.ApprovalRequired != nil)
	add("template_id", f.TemplateID != nil)
	add("parent_item_id", f.ParentItemID != nil)
	return names
}
