package output

import (
	"context"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_calendar.go clanops/internal/ports/output Calendar

// CalendarEvent is what gets published to an external calendar.
type CalendarEvent struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// Calendar publishes events to an external calendar identified by calendarID.
type Calendar interface {
	// CreateEvent returns the external id of the created entry.
	CreateEvent(ctx context.Context, calendarID string, event CalendarEvent) (string, error)
	DeleteEvent(ctx context.Context, calendarID, externalID string) error
	URL(calendarID, externalID string) string
}
