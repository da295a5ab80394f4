package gcalendar

// CreateEventRequest is the input for creating an all-day Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	// Date is the event day as YYYY-MM-DD.
	Date string
	// ReminderMinutes are popup reminders before the event start. Empty uses the calendar defaults.
	ReminderMinutes []int64
	// Properties are private extended properties used to find the event later.
	Properties map[string]string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Date        string
}

// ListEventsRequest selects events carrying a private extended property.
type ListEventsRequest struct {
	CalendarID    string
	PropertyKey   string
	PropertyValue string
	MaxResults    int64
}
