package entities

import (
	"fmt"

	"clanops/internal/domain"
)

// Kind is the family an event belongs to. Elective events additionally carry
// ElectiveDetails.
type Kind string

const (
	KindMission   Kind = "mission"
	KindTraining  Kind = "training"
	KindSelection Kind = "selection"
	KindMisc      Kind = "misc"
)

// ParseKind validates a kind/elective pair. Selection and misc events are
// always elective and cannot be requested as such explicitly.
func ParseKind(kind string, elective bool) (Kind, bool, error) {
	switch Kind(kind) {
	case KindMission, KindTraining:
		return Kind(kind), elective, nil
	case KindSelection, KindMisc:
		if elective {
			return "", false, fmt.Errorf("%w: %s cannot be requested as elective", domain.ErrInvalidKind, kind)
		}
		return Kind(kind), true, nil
	}
	return "", false, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
}

// CalendarKey names the calendar an event of this kind is published to.
func CalendarKey(kind Kind, elective bool) string {
	switch {
	case kind == KindMission && elective:
		return "elective_missions"
	case kind == KindMission:
		return "missions"
	case kind == KindTraining && elective:
		return "elective_training"
	case kind == KindTraining:
		return "training"
	case kind == KindSelection:
		return "selection"
	default:
		return "misc"
	}
}

// MissionDetails holds the mission-only fields.
type MissionDetails struct {
	COApprovalRequired bool
}

// SelectionDetails holds the selection-only fields.
type SelectionDetails struct {
	Class int
}

// ElectiveDetails holds the thresholds an interest gauge on an elective event
// must reach to succeed.
type ElectiveDetails struct {
	MinDaysNotice int
	MinMembers    int
	MinNonMembers int
	MinTotal      int
}

// Defaults applied to elective events created without explicit thresholds.
const (
	DefaultMinDaysNotice = 3
	DefaultMinTotal      = 3
)
