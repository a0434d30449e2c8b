package entities

import (
	"strconv"
	"time"
)

type Event struct {
	ID               string
	Kind             Kind
	Elective         bool
	AuthorID         string
	Name             string
	Description      string
	ScheduledAt      time.Time // zero = not set
	Duration         int       // minutes
	HoursBeforeClose int
	ServerAddr       string
	ServerPort       int

	Medical string
	Terrain string
	Mods    string
	Misc    string

	Capacities map[Side]Capacity
	SignUps    map[Side][]SignUp
	Roles      map[Side][]RoleGroup

	Attendances           []Attendance
	ActualMissions        []ActualMission
	AttendanceGeneratedAt time.Time

	Published bool
	Cancelled bool
	Occurred  bool

	CalendarEventID string
	CalendarLink    string

	Mission         *MissionDetails
	Selection       *SelectionDetails
	ElectiveDetails *ElectiveDetails

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndsAt returns the scheduled end of the event, or zero when unscheduled.
func (e *Event) EndsAt() time.Time {
	if e.ScheduledAt.IsZero() {
		return time.Time{}
	}
	return e.ScheduledAt.Add(time.Duration(e.Duration) * time.Minute)
}

// Location is the game server address shown to participants.
func (e *Event) Location() string {
	if e.ServerAddr == "" {
		return ""
	}
	return e.ServerAddr + ":" + strconv.Itoa(e.ServerPort)
}

func (e *Event) capacity(side Side) Capacity {
	if e.Capacities == nil {
		return Capacity{}
	}
	return e.Capacities[side]
}

// RoleGroup is a group of playable slots extracted from a mission file.
type RoleGroup struct {
	Roles []Role
}

// Role is a single slot. UserID is set once a player is assigned.
type Role struct {
	Rank        string
	Description string
	UserID      string
}

// Attendance is the derived time a user (or an unresolved in-game name) spent
// on the server during the event.
type Attendance struct {
	UserID  string
	Name    string
	Minutes int
}

// ActualMission is a mission/terrain pair played during the event.
type ActualMission struct {
	Mission string
	Terrain string
	Seconds float64
}
