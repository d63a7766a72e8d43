package gcalendar

import (
	"context"
	"time"
)

// ICalendar is the deadline calendar used by goals.
type ICalendar interface {
	CreateDeadline(ctx context.Context, req CreateDeadlineRequest) (*Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CreateDeadlineRequest describes an all-day event on a goal's target date.
type CreateDeadlineRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time // only the calendar date is used
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     time.Time
}
