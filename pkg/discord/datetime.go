package discord

import (
	"fmt"
	"strings"
	"time"

	"clanops/internal/domain"
	"clanops/pkg/tz"
)

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04"
)

// ParseEventDateTime reads a DD/MM/YYYY date and an HH:MM time in the display
// timezone. Both empty means the event has no date yet.
func ParseEventDateTime(dateStr, timeStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if dateStr == "" && timeStr == "" {
		return time.Time{}, nil
	}
	if dateStr == "" || timeStr == "" {
		return time.Time{}, fmt.Errorf("%w: date and time go together", domain.ErrInvalidEvent)
	}
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q, expected DD/MM/YYYY", domain.ErrInvalidEvent, dateStr)
	}
	t, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q, expected HH:MM", domain.ErrInvalidEvent, timeStr)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, tz.Display), nil
}

// SplitEventDateTime is the inverse of ParseEventDateTime, used to prefill
// modals.
func SplitEventDateTime(t time.Time) (dateStr, timeStr string) {
	if t.IsZero() {
		return "", ""
	}
	local := t.In(tz.Display)
	return local.Format(dateLayout), local.Format(timeLayout)
}

// FormatEventDateTime renders t in the display timezone.
func FormatEventDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Display).Format(dateLayout + " " + timeLayout + " MST")
}

// FormatWithRelative appends a Discord relative timestamp, which each client
// renders in its own timezone ("in 2 days").
func FormatWithRelative(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s (<t:%d:R>)", FormatEventDateTime(t), t.Unix())
}
