package hook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"item-details-service/internal/itemdetail"
	"item-details-service/pkg/gcalendar"
)

const itemPropertyKey = "item_detail_id"

// Calendar is the subset of *gcalendar.Client used for reminders.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// reminderSettings is the accepted shape of ItemDetail.ReminderSettings.
type reminderSettings struct {
	Enabled       bool    `json:"enabled"`
	MinutesBefore []int64 `json:"minutes_before"`
}

type reminder struct {
	calendar   Calendar
	calendarID string
}

// NewReminder keeps one all-day calendar event per item on its due date
// while reminder_settings.enabled is true.
func NewReminder(cal Calendar, calendarID string) itemdetail.Hook {
	return &reminder{calendar: cal, calendarID: calendarID}
}

func (h *reminder) Name() string { return "reminder" }

func (h *reminder) Handle(ctx context.Context, evt itemdetail.Event) error {
	switch evt.Action {
	case itemdetail.ActionCreated:
		return h.create(ctx, evt.After)
	case itemdetail.ActionUpdated:
		if !slices.Contains(evt.Changes, "due_date") && !slices.Contains(evt.Changes, "reminder_settings") &&
			!slices.Contains(evt.Changes, "name") {
			return nil
		}
		if err := h.clear(ctx, evt.ItemID); err != nil {
			return err
		}
		return h.create(ctx, evt.After)
	case itemdetail.ActionDeleted:
		return h.clear(ctx, evt.ItemID)
	}
	return nil
}

func (h *reminder) create(ctx context.Context, d *itemdetail.ItemDetail) error {
	if d == nil || d.DueDate == nil {
		return nil
	}
	settings, ok := parseReminderSettings(d.ReminderSettings)
	if !ok || !settings.Enabled {
		return nil
	}

	desc := ""
	if d.Description != nil {
		desc = *d.Description
	}
	_, err := h.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:      h.calendarID,
		Summary:         d.Name,
		Description:     desc,
		Date:            *d.DueDate,
		ReminderMinutes: settings.MinutesBefore,
		Properties:      map[string]string{itemPropertyKey: strconv.FormatInt(d.ID, 10)},
	})
	return err
}

func (h *reminder) clear(ctx context.Context, itemID int64) error {
	events, err := h.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID:    h.calendarID,
		PropertyKey:   itemPropertyKey,
		PropertyValue: strconv.FormatInt(itemID, 10),
	})
	if err != nil {
		return err
	}

	var errs []error
	for _, e := range events {
		if err := h.calendar.DeleteEvent(ctx, h.calendarID, e.ID); err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", e.ID, err))
		}
	}
	return errors.Join(errs...)
}

func parseReminderSettings(raw json.RawMessage) (reminderSettings, bool) {
	var s reminderSettings
	if len(raw) == 0 {
		return s, false
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, false
	}
	return s, true
}
