package rest

import (
	"time"

	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
)

const (
	commitmentCertain = "certain"
	commitmentMaybe   = "maybe"
	commitmentCancel  = "cancel"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type resultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type capacityDTO struct {
	Max           int `json:"max"`
	MaxNonMembers int `json:"max_non_members"`
}

type interestDTO struct {
	MinDaysNotice int `json:"min_days_notice"`
	MinMembers    int `json:"min_members"`
	MinNonMembers int `json:"min_non_members"`
	MinTotal      int `json:"min_total"`
}

type eventRequest struct {
	Kind               string                 `json:"kind"`
	Elective           bool                   `json:"elective"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description"`
	ScheduledAt        *time.Time             `json:"scheduled_at"`
	Duration           int                    `json:"duration"`
	HoursBeforeClose   int                    `json:"hours_before_close"`
	ServerAddr         string                 `json:"server_addr"`
	ServerPort         int                    `json:"server_port"`
	Capacities         map[string]capacityDTO `json:"capacities"`
	Medical            string                 `json:"medical"`
	Terrain            string                 `json:"terrain"`
	Mods               string                 `json:"mods"`
	Misc               string                 `json:"misc"`
	MissionFile        []byte                 `json:"mission_file"` // base64
	COApprovalRequired bool                   `json:"co_approval_required"`
	SelectionClass     int                    `json:"selection_class"`
	Interest           *interestDTO           `json:"interest"`
}

func (req eventRequest) toInput() (input.EventInput, error) {
	in := input.EventInput{
		Kind:             req.Kind,
		Elective:         req.Elective,
		Name:             req.Name,
		Description:      req.Description,
		Duration:         req.Duration,
		HoursBeforeClose: req.HoursBeforeClose,
		ServerAddr:       req.ServerAddr,
		ServerPort:       req.ServerPort,
		Medical:          req.Medical,
		Terrain:          req.Terrain,
		Mods:             req.Mods,
		Misc:             req.Misc,
		MissionFile:      req.MissionFile,

		COApprovalRequired: req.COApprovalRequired,
		SelectionClass:     req.SelectionClass,
	}
	if req.Interest != nil {
		in.Interest = &entities.ElectiveDetails{
			MinDaysNotice: req.Interest.MinDaysNotice,
			MinMembers:    req.Interest.MinMembers,
			MinNonMembers: req.Interest.MinNonMembers,
			MinTotal:      req.Interest.MinTotal,
		}
	}
	if req.ScheduledAt != nil {
		in.ScheduledAt = *req.ScheduledAt
	}
	if len(req.Capacities) > 0 {
		in.Capacities = make(map[entities.Side]entities.Capacity, len(req.Capacities))
		for name, c := range req.Capacities {
			side, err := entities.ParseSide(name)
			if err != nil {
				return input.EventInput{}, err
			}
			in.Capacities[side] = entities.Capacity{Members: c.Max, NonMembers: c.MaxNonMembers}
		}
	}
	return in, nil
}

type signUpRequest struct {
	Side       string `json:"side"`
	Commitment string `json:"commitment"`
}

type signUpResponse struct {
	UserID    string    `json:"user_id"`
	Maybe     bool      `json:"maybe"`
	NonMember bool      `json:"non_member"`
	Created   time.Time `json:"created"`
	Modified  time.Time `json:"modified"`
}

type sideResponse struct {
	Side          entities.Side    `json:"side"`
	Max           int              `json:"max"`
	MaxNonMembers int              `json:"max_non_members"`
	Certain       int              `json:"certain"`
	Maybe         int              `json:"maybe"`
	NonMembers    int              `json:"non_members"`
	SignUps       []signUpResponse `json:"sign_ups"`
}

type roleResponse struct {
	Rank        string `json:"rank,omitempty"`
	Description string `json:"description"`
	UserID      string `json:"user_id,omitempty"`
}

type attendanceEntry struct {
	UserID  string `json:"user_id,omitempty"`
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

type missionEntry struct {
	Mission string  `json:"mission"`
	Terrain string  `json:"terrain"`
	Seconds float64 `json:"seconds"`
}

type viewerResponse struct {
	SignedUp bool `json:"signed_up"`
	Maybe    bool `json:"maybe"`
}

type eventResponse struct {
	ID                 string                      `json:"id"`
	Kind               entities.Kind               `json:"kind"`
	Elective           bool                        `json:"elective"`
	AuthorID           string                      `json:"author_id"`
	Name               string                      `json:"name"`
	Description        string                      `json:"description"`
	ScheduledAt        *time.Time                  `json:"scheduled_at,omitempty"`
	EndsAt             *time.Time                  `json:"ends_at,omitempty"`
	SignUpsCloseAt     *time.Time                  `json:"sign_ups_close_at,omitempty"`
	HoursLeft          float64                     `json:"hours_left"`
	HoursLeftSignUp    float64                     `json:"hours_left_sign_up"`
	Duration           int                         `json:"duration"`
	HoursBeforeClose   int                         `json:"hours_before_close"`
	Location           string                      `json:"location,omitempty"`
	Medical            string                      `json:"medical,omitempty"`
	Terrain            string                      `json:"terrain,omitempty"`
	Mods               string                      `json:"mods,omitempty"`
	Misc               string                      `json:"misc,omitempty"`
	Published          bool                        `json:"published"`
	Cancelled          bool                        `json:"cancelled"`
	Occurred           bool                        `json:"occurred"`
	CalendarLink       string                      `json:"calendar_link,omitempty"`
	COApprovalRequired bool                        `json:"co_approval_required,omitempty"`
	SelectionClass     int                         `json:"selection_class,omitempty"`
	Interest           *interestDTO                `json:"interest,omitempty"`
	Sides              []sideResponse              `json:"sides"`
	Roles              map[string][][]roleResponse `json:"roles,omitempty"`
	Viewer             *viewerResponse             `json:"viewer,omitempty"`
	Version            int64                       `json:"version"`
}

type attendanceResponse struct {
	EventID        string            `json:"event_id"`
	GeneratedAt    *time.Time        `json:"generated_at,omitempty"`
	Attendances    []attendanceEntry `json:"attendances"`
	ActualMissions []missionEntry    `json:"actual_missions"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// newEventResponse renders e as of now. viewerID, when set, adds the
// caller's own sign-up status.
func newEventResponse(e *entities.Event, now time.Time, viewerID string) eventResponse {
	resp := eventResponse{
		ID:               e.ID,
		Kind:             e.Kind,
		Elective:         e.Elective,
		AuthorID:         e.AuthorID,
		Name:             e.Name,
		Description:      e.Description,
		ScheduledAt:      optionalTime(e.ScheduledAt),
		EndsAt:           optionalTime(e.EndsAt()),
		SignUpsCloseAt:   optionalTime(e.SignUpsCloseAt()),
		HoursLeft:        e.HoursLeft(now),
		HoursLeftSignUp:  e.HoursLeftSignUp(now),
		Duration:         e.Duration,
		HoursBeforeClose: e.HoursBeforeClose,
		Location:         e.Location(),
		Medical:          e.Medical,
		Terrain:          e.Terrain,
		Mods:             e.Mods,
		Misc:             e.Misc,
		Published:        e.Published,
		Cancelled:        e.Cancelled,
		Occurred:         e.Occurred,
		CalendarLink:     e.CalendarLink,
		Sides:            []sideResponse{},
		Version:          e.Version,
	}
	if e.Mission != nil {
		resp.COApprovalRequired = e.Mission.COApprovalRequired
	}
	if e.Selection != nil {
		resp.SelectionClass = e.Selection.Class
	}
	if t := e.ElectiveDetails; t != nil {
		resp.Interest = &interestDTO{
			MinDaysNotice: t.MinDaysNotice,
			MinMembers:    t.MinMembers,
			MinNonMembers: t.MinNonMembers,
			MinTotal:      t.MinTotal,
		}
	}
	if viewerID != "" {
		resp.Viewer = &viewerResponse{
			SignedUp: e.IsUserSignedUp(viewerID, false),
			Maybe:    e.IsUserSignedUp(viewerID, true),
		}
	}

	for _, side := range entities.AllSides() {
		c := e.Capacities[side]
		all := entities.SignUpFilter{Sides: []entities.Side{side}, Members: true, NonMembers: true, Maybe: true, Certain: true}
		active := e.SignedUp(all)
		if c.Members == 0 && len(active) == 0 {
			continue
		}

		sr := sideResponse{Side: side, Max: c.Members, MaxNonMembers: c.NonMembers, SignUps: []signUpResponse{}}
		for _, s := range active {
			if s.Maybe {
				sr.Maybe++
			} else {
				sr.Certain++
			}
			if s.NonMember {
				sr.NonMembers++
			}
			sr.SignUps = append(sr.SignUps, signUpResponse{
				UserID:    s.UserID,
				Maybe:     s.Maybe,
				NonMember: s.NonMember,
				Created:   s.Created,
				Modified:  s.Modified,
			})
		}
		resp.Sides = append(resp.Sides, sr)
	}

	if len(e.Roles) > 0 {
		resp.Roles = make(map[string][][]roleResponse, len(e.Roles))
		for side, groups := range e.Roles {
			out := make([][]roleResponse, len(groups))
			for i, g := range groups {
				out[i] = make([]roleResponse, len(g.Roles))
				for j, r := range g.Roles {
					out[i][j] = roleResponse{Rank: r.Rank, Description: r.Description, UserID: r.UserID}
				}
			}
			resp.Roles[string(side)] = out
		}
	}
	return resp
}

func newAttendanceResponse(e *entities.Event) attendanceResponse {
	resp := attendanceResponse{
		EventID:        e.ID,
		GeneratedAt:    optionalTime(e.AttendanceGeneratedAt),
		Attendances:    make([]attendanceEntry, 0, len(e.Attendances)),
		ActualMissions: make([]missionEntry, 0, len(e.ActualMissions)),
	}
	for _, a := range e.Attendances {
		resp.Attendances = append(resp.Attendances, attendanceEntry{UserID: a.UserID, Name: a.Name, Minutes: a.Minutes})
	}
	for _, m := range e.ActualMissions {
		resp.ActualMissions = append(resp.ActualMissions, missionEntry{Mission: m.Mission, Terrain: m.Terrain, Seconds: m.Seconds})
	}
	return resp
}
