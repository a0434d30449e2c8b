package calendar

import (
	"context"
	"log"

	"clanops/internal/common/uuid"
	"clanops/internal/ports/output"
)

var _ output.Calendar = (*LogCalendar)(nil)

// LogCalendar only logs entries. It is used when no Discord session is
// configured so publishing still works.
type LogCalendar struct {
	uuid uuid.UUID
}

func NewLogCalendar(u uuid.UUID) *LogCalendar {
	return &LogCalendar{uuid: u}
}

func (c *LogCalendar) CreateEvent(_ context.Context, calendarID string, event output.CalendarEvent) (string, error) {
	id := c.uuid.NewUUID()
	log.Printf("📅 Calendar %q: %s at %s (%s)", calendarID, event.Title, event.Start.Format("2006-01-02 15:04 MST"), id)
	return id, nil
}

func (c *LogCalendar) DeleteEvent(_ context.Context, calendarID, externalID string) error {
	log.Printf("📅 Calendar %q: removed %s", calendarID, externalID)
	return nil
}

func (c *LogCalendar) URL(string, string) string {
	return ""
}
