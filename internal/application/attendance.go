package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"clanops/internal/common/clock"
	"clanops/internal/domain"
	"clanops/internal/domain/attendance"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
	"clanops/internal/ports/output"
)

var _ input.AttendanceUseCase = (*AttendanceService)(nil)

type AttendanceService struct {
	eventRepo    output.EventRepository
	userRepo     output.UserRepository
	snapshotRepo output.SnapshotRepository
	clock        clock.Clock
	locks        *EventLocks
}

func NewAttendanceService(
	eventRepo output.EventRepository,
	userRepo output.UserRepository,
	snapshotRepo output.SnapshotRepository,
	clk clock.Clock,
	locks *EventLocks,
) *AttendanceService {
	return &AttendanceService{
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		snapshotRepo: snapshotRepo,
		clock:        clk,
		locks:        locks,
	}
}

// Generate replaces the event's attendance and played missions with the ones
// derived from the snapshots taken during the event.
func (s *AttendanceService) Generate(ctx context.Context, eventID string) (*entities.Event, error) {
	return updateEvent(ctx, s.eventRepo, s.locks, eventID, func(event *entities.Event) (bool, error) {
		if event.ScheduledAt.IsZero() {
			return false, fmt.Errorf("generate attendance for %s: %w", eventID, domain.ErrEventNotScheduled)
		}
		snapshots, err := s.snapshotRepo.FindInWindow(ctx, event.ServerAddr, event.ServerPort, event.ScheduledAt, event.EndsAt())
		if err != nil {
			return false, fmt.Errorf("find snapshots: %w", err)
		}
		attendances, err := attendance.Aggregate(ctx, snapshots, userResolver{repo: s.userRepo})
		if err != nil {
			return false, fmt.Errorf("aggregate attendance: %w", err)
		}

		now := s.clock.Now()
		event.Attendances = attendances
		event.ActualMissions = attendance.ActualMissions(snapshots)
		event.AttendanceGeneratedAt = now
		event.Occurred = event.HasOccurred(now)
		event.UpdatedAt = now
		return true, nil
	})
}

// GenerateDue generates attendance for every ended event still missing it.
// A failing event is logged and skipped.
func (s *AttendanceService) GenerateDue(ctx context.Context, now time.Time) (int, error) {
	events, err := s.eventRepo.FindEndedWithoutAttendance(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("find ended events: %w", err)
	}
	generated := 0
	for _, e := range events {
		event, err := s.Generate(ctx, e.ID)
		if err != nil {
			log.Printf("❌ Attendance generation failed for event %s: %v", e.ID, err)
			continue
		}
		generated++
		log.Printf("✅ Attendance generated for event %s (%d players)", e.ID, len(event.Attendances))
	}
	return generated, nil
}

type userResolver struct {
	repo output.UserRepository
}

func (r userResolver) ResolveArmaName(ctx context.Context, name string, at time.Time) (*entities.User, error) {
	user, err := r.repo.FindByArmaNameAt(ctx, name, at)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	return user, err
}
