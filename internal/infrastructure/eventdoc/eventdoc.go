// Package eventdoc is the stored JSON form of an event, shared by the event
// stores. The version stamp is kept by each store next to the document.
package eventdoc

import (
	"encoding/json"
	"fmt"
	"time"

	"clanops/internal/domain/entities"
)

type document struct {
	ID               string     `json:"id"`
	Kind             string     `json:"kind"`
	Elective         bool       `json:"elective"`
	AuthorID         string     `json:"author_id,omitempty"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	ScheduledAt      *time.Time `json:"datetime,omitempty"`
	Duration         int        `json:"duration"`
	HoursBeforeClose int        `json:"hours_before_close"`
	ServerAddr       string     `json:"server_addr,omitempty"`
	ServerPort       int        `json:"server_port,omitempty"`
	Medical          string     `json:"medical,omitempty"`
	Terrain          string     `json:"terrain,omitempty"`
	Mods             string     `json:"mods,omitempty"`
	Misc             string     `json:"misc,omitempty"`

	Capacities map[string]capacity    `json:"capacities,omitempty"`
	SignUps    map[string][]signUp    `json:"sign_ups,omitempty"`
	Roles      map[string][]roleGroup `json:"roles,omitempty"`

	Attendances           []attendance    `json:"attendances,omitempty"`
	ActualMissions        []actualMission `json:"actual_missions,omitempty"`
	AttendanceGeneratedAt *time.Time      `json:"attendance_generated_at,omitempty"`

	Published bool `json:"published"`
	Cancelled bool `json:"cancelled"`
	Occurred  bool `json:"occurred"`

	CalendarEventID string `json:"gcal_event_id,omitempty"`
	CalendarLink    string `json:"gcal_event_link,omitempty"`

	Mission   *mission   `json:"mission,omitempty"`
	Selection *selection `json:"selection,omitempty"`
	Elect     *elective  `json:"elective_details,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type capacity struct {
	Members    int `json:"max"`
	NonMembers int `json:"max_non_members"`
}

type signUp struct {
	UserID    string    `json:"user"`
	NonMember bool      `json:"non_member,omitempty"`
	Maybe     bool      `json:"maybe,omitempty"`
	Cancelled bool      `json:"cancelled,omitempty"`
	Modified  time.Time `json:"modified"`
	Created   time.Time `json:"created"`
}

type roleGroup struct {
	Roles []role `json:"group"`
}

type role struct {
	Rank        string `json:"rank,omitempty"`
	Description string `json:"description"`
	UserID      string `json:"user,omitempty"`
}

type attendance struct {
	UserID  string `json:"user,omitempty"`
	Name    string `json:"name"`
	Minutes int    `json:"duration"`
}

type actualMission struct {
	Mission string  `json:"mission"`
	Terrain string  `json:"terrain"`
	Seconds float64 `json:"time_spent"`
}

type mission struct {
	COApprovalRequired bool `json:"co_approval_required,omitempty"`
}

type selection struct {
	Class int `json:"class"`
}

type elective struct {
	MinDaysNotice int `json:"min_days_notice"`
	MinMembers    int `json:"min_members"`
	MinNonMembers int `json:"min_non_members"`
	MinTotal      int `json:"min_total"`
}

// Marshal encodes an event, without its version.
func Marshal(e *entities.Event) ([]byte, error) {
	data, err := json.Marshal(fromEntity(e))
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", e.ID, err)
	}
	return data, nil
}

// Unmarshal decodes an event. Version is left to the caller.
func Unmarshal(data []byte) (*entities.Event, error) {
	var d document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	return d.toEntity(), nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}

func timeVal(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}

func fromEntity(e *entities.Event) document {
	d := document{
		ID:                    e.ID,
		Kind:                  string(e.Kind),
		Elective:              e.Elective,
		AuthorID:              e.AuthorID,
		Name:                  e.Name,
		Description:           e.Description,
		ScheduledAt:           timePtr(e.ScheduledAt),
		Duration:              e.Duration,
		HoursBeforeClose:      e.HoursBeforeClose,
		ServerAddr:            e.ServerAddr,
		ServerPort:            e.ServerPort,
		Medical:               e.Medical,
		Terrain:               e.Terrain,
		Mods:                  e.Mods,
		Misc:                  e.Misc,
		AttendanceGeneratedAt: timePtr(e.AttendanceGeneratedAt),
		Published:             e.Published,
		Cancelled:             e.Cancelled,
		Occurred:              e.Occurred,
		CalendarEventID:       e.CalendarEventID,
		CalendarLink:          e.CalendarLink,
		CreatedAt:             e.CreatedAt.UTC(),
		UpdatedAt:             e.UpdatedAt.UTC(),
	}

	if len(e.Capacities) > 0 {
		d.Capacities = make(map[string]capacity, len(e.Capacities))
		for side, c := range e.Capacities {
			d.Capacities[string(side)] = capacity{Members: c.Members, NonMembers: c.NonMembers}
		}
	}
	if len(e.SignUps) > 0 {
		d.SignUps = make(map[string][]signUp, len(e.SignUps))
		for side, list := range e.SignUps {
			out := make([]signUp, len(list))
			for i, s := range list {
				out[i] = signUp{
					UserID:    s.UserID,
					NonMember: s.NonMember,
					Maybe:     s.Maybe,
					Cancelled: s.Cancelled,
					Modified:  s.Modified.UTC(),
					Created:   s.Created.UTC(),
				}
			}
			d.SignUps[string(side)] = out
		}
	}
	if len(e.Roles) > 0 {
		d.Roles = make(map[string][]roleGroup, len(e.Roles))
		for side, groups := range e.Roles {
			out := make([]roleGroup, len(groups))
			for i, g := range groups {
				roles := make([]role, len(g.Roles))
				for j, r := range g.Roles {
					roles[j] = role{Rank: r.Rank, Description: r.Description, UserID: r.UserID}
				}
				out[i] = roleGroup{Roles: roles}
			}
			d.Roles[string(side)] = out
		}
	}
	for _, a := range e.Attendances {
		d.Attendances = append(d.Attendances, attendance{UserID: a.UserID, Name: a.Name, Minutes: a.Minutes})
	}
	for _, m := range e.ActualMissions {
		d.ActualMissions = append(d.ActualMissions, actualMission{Mission: m.Mission, Terrain: m.Terrain, Seconds: m.Seconds})
	}

	if m := e.Mission; m != nil {
		d.Mission = &mission{COApprovalRequired: m.COApprovalRequired}
	}
	if s := e.Selection; s != nil {
		d.Selection = &selection{Class: s.Class}
	}
	if el := e.ElectiveDetails; el != nil {
		d.Elect = &elective{
			MinDaysNotice: el.MinDaysNotice,
			MinMembers:    el.MinMembers,
			MinNonMembers: el.MinNonMembers,
			MinTotal:      el.MinTotal,
		}
	}
	return d
}

func (d document) toEntity() *entities.Event {
	e := &entities.Event{
		ID:                    d.ID,
		Kind:                  entities.Kind(d.Kind),
		Elective:              d.Elective,
		AuthorID:              d.AuthorID,
		Name:                  d.Name,
		Description:           d.Description,
		ScheduledAt:           timeVal(d.ScheduledAt),
		Duration:              d.Duration,
		HoursBeforeClose:      d.HoursBeforeClose,
		ServerAddr:            d.ServerAddr,
		ServerPort:            d.ServerPort,
		Medical:               d.Medical,
		Terrain:               d.Terrain,
		Mods:                  d.Mods,
		Misc:                  d.Misc,
		AttendanceGeneratedAt: timeVal(d.AttendanceGeneratedAt),
		Published:             d.Published,
		Cancelled:             d.Cancelled,
		Occurred:              d.Occurred,
		CalendarEventID:       d.CalendarEventID,
		CalendarLink:          d.CalendarLink,
		CreatedAt:             d.CreatedAt.UTC(),
		UpdatedAt:             d.UpdatedAt.UTC(),
		Capacities:            make(map[entities.Side]entities.Capacity, len(d.Capacities)),
		SignUps:               make(map[entities.Side][]entities.SignUp, len(d.SignUps)),
	}

	for side, c := range d.Capacities {
		e.Capacities[entities.Side(side)] = entities.Capacity{Members: c.Members, NonMembers: c.NonMembers}
	}
	for side, list := range d.SignUps {
		out := make([]entities.SignUp, len(list))
		for i, s := range list {
			out[i] = entities.SignUp{
				UserID:    s.UserID,
				NonMember: s.NonMember,
				Maybe:     s.Maybe,
				Cancelled: s.Cancelled,
				Modified:  s.Modified.UTC(),
				Created:   s.Created.UTC(),
			}
		}
		e.SignUps[entities.Side(side)] = out
	}
	if len(d.Roles) > 0 {
		e.Roles = make(map[entities.Side][]entities.RoleGroup, len(d.Roles))
		for side, groups := range d.Roles {
			out := make([]entities.RoleGroup, len(groups))
			for i, g := range groups {
				roles := make([]entities.Role, len(g.Roles))
				for j, r := range g.Roles {
					roles[j] = entities.Role{Rank: r.Rank, Description: r.Description, UserID: r.UserID}
				}
				out[i] = entities.RoleGroup{Roles: roles}
			}
			e.Roles[entities.Side(side)] = out
		}
	}
	for _, a := range d.Attendances {
		e.Attendances = append(e.Attendances, entities.Attendance{UserID: a.UserID, Name: a.Name, Minutes: a.Minutes})
	}
	for _, m := range d.ActualMissions {
		e.ActualMissions = append(e.ActualMissions, entities.ActualMission{Mission: m.Mission, Terrain: m.Terrain, Seconds: m.Seconds})
	}

	if m := d.Mission; m != nil {
		e.Mission = &entities.MissionDetails{COApprovalRequired: m.COApprovalRequired}
	}
	if s := d.Selection; s != nil {
		e.Selection = &entities.SelectionDetails{Class: s.Class}
	}
	if el := d.Elect; el != nil {
		e.ElectiveDetails = &entities.ElectiveDetails{
			MinDaysNotice: el.MinDaysNotice,
			MinMembers:    el.MinMembers,
			MinNonMembers: el.MinNonMembers,
			MinTotal:      el.MinTotal,
		}
	}
	return e
}
