package output

import (
	"context"
	"time"

	"clanops/internal/domain/entities"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_event_repo.go clanops/internal/ports/output EventRepository

// EventRepository stores events as whole documents.
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	// Update replaces the stored document if its version still equals
	// event.Version, then increments event.Version. It returns
	// domain.ErrVersionConflict otherwise.
	Update(ctx context.Context, event *entities.Event) error
	// FindEndedWithoutAttendance returns the dated, non-cancelled events that
	// ended before now and have no generated attendance.
	FindEndedWithoutAttendance(ctx context.Context, now time.Time) ([]entities.Event, error)
}
