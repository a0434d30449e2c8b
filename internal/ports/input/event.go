package input

import (
	"context"
	"time"

	"clanops/internal/domain/entities"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_event.go clanops/internal/ports/input EventUseCase

// Result is the outcome of a user action whose failure is reported to the
// user rather than raised. Message is already translated.
type Result struct {
	Success bool
	Message string
}

// EventInput holds the editable fields of an event.
type EventInput struct {
	Kind             string
	Elective         bool
	Name             string
	Description      string
	ScheduledAt      time.Time
	Duration         int
	HoursBeforeClose int
	ServerAddr       string
	ServerPort       int
	Capacities       map[entities.Side]entities.Capacity
	Medical          string
	Terrain          string
	Mods             string
	Misc             string
	// MissionFile is an optional mission.sqm; its playable slots replace the
	// event roles.
	MissionFile []byte

	// Kind specific settings. Interest applies to elective events; nil keeps
	// the current thresholds, or the defaults on creation.
	COApprovalRequired bool
	SelectionClass     int
	Interest           *entities.ElectiveDetails
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, authorID string, in EventInput) (*entities.Event, error)
	EditEvent(ctx context.Context, id string, in EventInput) (*entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	Publish(ctx context.Context, locale, id string) (Result, error)
	Cancel(ctx context.Context, locale, id string) (Result, error)
}
