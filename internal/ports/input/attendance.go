package input

import (
	"context"
	"time"

	"clanops/internal/domain/entities"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_attendance.go clanops/internal/ports/input AttendanceUseCase

type AttendanceUseCase interface {
	// Generate recomputes the attendance and played missions of an event.
	Generate(ctx context.Context, eventID string) (*entities.Event, error)
	// GenerateDue runs Generate for every ended event that has none yet and
	// returns how many were generated.
	GenerateDue(ctx context.Context, now time.Time) (int, error)
}
