package entities

import (
	"fmt"
	"strings"

	"clanops/internal/domain"
)

// Side is one of the factions a user can sign up for.
type Side string

const (
	SideWest        Side = "west"
	SideEast        Side = "east"
	SideIndependent Side = "ind"
	SideCivilian    Side = "civ"
)

var allSides = []Side{SideWest, SideEast, SideIndependent, SideCivilian}

// AllSides returns every side in display order.
func AllSides() []Side {
	out := make([]Side, len(allSides))
	copy(out, allSides)
	return out
}

// ParseSide accepts the short side names used in URLs and component IDs.
func ParseSide(s string) (Side, error) {
	side := Side(strings.ToLower(strings.TrimSpace(s)))
	if !side.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSide, s)
	}
	return side, nil
}

func (s Side) Valid() bool {
	switch s {
	case SideWest, SideEast, SideIndependent, SideCivilian:
		return true
	}
	return false
}

// MessageID is the i18n key of the side's display name.
func (s Side) MessageID() string {
	return "side." + string(s)
}

// Capacity holds the two ceilings of a side. Members is the combined ceiling
// for everyone, NonMembers the ceiling for users without a rank.
type Capacity struct {
	Members    int
	NonMembers int
}
