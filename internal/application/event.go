package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"clanops/internal/common/clock"
	"clanops/internal/common/uuid"
	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
	"clanops/internal/ports/output"
	"clanops/pkg/sqm"
)

var _ input.EventUseCase = (*EventService)(nil)

// EventServiceConfig wires an EventService.
type EventServiceConfig struct {
	EventRepo  output.EventRepository
	Calendar   output.Calendar
	Translator output.T
	Clock      clock.Clock
	UUID       uuid.UUID
	Locks      *EventLocks
	// Calendars maps entities.CalendarKey values to calendar ids.
	Calendars map[string]string
	// BaseURL prefixes the event page link added to calendar entries.
	BaseURL string
}

type EventService struct {
	eventRepo  output.EventRepository
	calendar   output.Calendar
	translator output.T
	clock      clock.Clock
	uuid       uuid.UUID
	locks      *EventLocks
	calendars  map[string]string
	baseURL    string
}

func NewEventService(cfg EventServiceConfig) *EventService {
	return &EventService{
		eventRepo:  cfg.EventRepo,
		calendar:   cfg.Calendar,
		translator: cfg.Translator,
		clock:      cfg.Clock,
		uuid:       cfg.UUID,
		locks:      cfg.Locks,
		calendars:  cfg.Calendars,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// CreateEvent validates and stores a new unpublished event.
func (s *EventService) CreateEvent(ctx context.Context, authorID string, in input.EventInput) (*entities.Event, error) {
	now := s.clock.Now()
	kind, elective, err := entities.ParseKind(in.Kind, in.Elective)
	if err != nil {
		return nil, err
	}
	if err := validateEventInput(in, now, true); err != nil {
		return nil, err
	}
	if err := validateKindInput(kind, elective, in); err != nil {
		return nil, err
	}

	event := &entities.Event{
		ID:        s.uuid.NewUUID(),
		Kind:      kind,
		Elective:  elective,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyKindDetails(event, in)
	if err := applyEventInput(event, in); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	log.Printf("✅ Event %s created by %s: %s", event.ID, authorID, event.Name)
	return event, nil
}

// EditEvent updates an event. A published event keeps its name, kind and
// date.
func (s *EventService) EditEvent(ctx context.Context, id string, in input.EventInput) (*entities.Event, error) {
	return updateEvent(ctx, s.eventRepo, s.locks, id, func(event *entities.Event) (bool, error) {
		now := s.clock.Now()
		kind, elective, err := entities.ParseKind(in.Kind, in.Elective)
		if err != nil {
			return false, err
		}
		dateChanged := !in.ScheduledAt.Equal(event.ScheduledAt) || in.HoursBeforeClose != event.HoursBeforeClose
		if err := validateEventInput(in, now, dateChanged); err != nil {
			return false, err
		}
		if err := validateKindInput(kind, elective, in); err != nil {
			return false, err
		}
		if event.Published {
			if in.Name != event.Name {
				return false, fmt.Errorf("%w: name of a published event cannot change", domain.ErrInvalidEvent)
			}
			if kind != event.Kind || elective != event.Elective {
				return false, fmt.Errorf("%w: kind of a published event cannot change", domain.ErrInvalidEvent)
			}
			if !event.ScheduledAt.IsZero() && !in.ScheduledAt.Equal(event.ScheduledAt) {
				return false, fmt.Errorf("%w: date of a published event cannot change", domain.ErrInvalidEvent)
			}
		}

		if kind != event.Kind || elective != event.Elective {
			event.Kind, event.Elective = kind, elective
			event.ElectiveDetails = nil
		}
		applyKindDetails(event, in)
		if err := applyEventInput(event, in); err != nil {
			return false, err
		}
		event.UpdatedAt = now
		return true, nil
	})
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

// Publish opens the event for sign-ups and adds it to the calendar of its
// kind. A calendar failure leaves the event unpublished.
func (s *EventService) Publish(ctx context.Context, locale, id string) (input.Result, error) {
	var (
		outcome    entities.Outcome
		calendarID string
		externalID string
		createdIn  string
	)
	event, err := updateEvent(ctx, s.eventRepo, s.locks, id, func(event *entities.Event) (bool, error) {
		now := s.clock.Now()
		if p := event.Publishable(now); !p.OK {
			outcome = p
			return false, nil
		}
		calendarID = s.calendars[entities.CalendarKey(event.Kind, event.Elective)]
		// A retried cycle reuses the entry created by the previous attempt.
		if externalID == "" {
			created, err := s.calendar.CreateEvent(ctx, calendarID, output.CalendarEvent{
				Title:       event.Name,
				Description: fmt.Sprintf("%s Event page: %s/events/%s", event.Description, s.baseURL, event.ID),
				Location:    event.Location(),
				Start:       event.ScheduledAt,
				End:         event.EndsAt(),
			})
			if err != nil || created == "" {
				log.Printf("❌ Calendar entry creation failed for event %s: %v", event.ID, err)
				outcome = entities.Outcome{Message: entities.MsgPublishFailed}
				return false, nil
			}
			externalID, createdIn = created, calendarID
		}

		event.Published = true
		event.CalendarEventID = externalID
		event.CalendarLink = s.calendar.URL(calendarID, externalID)
		event.UpdatedAt = now
		outcome = entities.Outcome{OK: true, Message: entities.MsgPublishSuccess}
		return true, nil
	})
	if externalID != "" && (err != nil || !outcome.OK) {
		// The entry created above belongs to no published event.
		if delErr := s.calendar.DeleteEvent(ctx, createdIn, externalID); delErr != nil {
			log.Printf("⚠️ Calendar entry %s left without published event %s: %v", externalID, id, delErr)
		}
	}
	if err != nil {
		return input.Result{}, err
	}
	if outcome.OK {
		log.Printf("✅ Event %s published (%s)", event.ID, event.CalendarLink)
	}
	return result(s.translator, locale, outcome), nil
}

// Cancel cancels the event and removes its calendar entry, if any. Failing to
// remove the entry does not fail the cancellation.
func (s *EventService) Cancel(ctx context.Context, locale, id string) (input.Result, error) {
	var outcome entities.Outcome
	event, err := updateEvent(ctx, s.eventRepo, s.locks, id, func(event *entities.Event) (bool, error) {
		now := s.clock.Now()
		if c := event.Cancelable(now); !c.OK {
			outcome = c
			return false, nil
		}
		event.Cancelled = true
		event.UpdatedAt = now
		outcome = entities.Outcome{OK: true, Message: entities.MsgCancelSuccess}
		return true, nil
	})
	if err != nil {
		return input.Result{}, err
	}
	if !outcome.OK {
		return result(s.translator, locale, outcome), nil
	}

	if event.CalendarEventID != "" {
		calendarID := s.calendars[entities.CalendarKey(event.Kind, event.Elective)]
		if err := s.calendar.DeleteEvent(ctx, calendarID, event.CalendarEventID); err != nil {
			log.Printf("⚠️ Calendar entry deletion failed for event %s: %v", event.ID, err)
		}
	}
	log.Printf("✅ Event %s cancelled", event.ID)
	return result(s.translator, locale, outcome), nil
}

func validateEventInput(in input.EventInput, now time.Time, checkDate bool) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidEvent}, args...)...)
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(in.Name)); n < 4 || n > 40 {
		return invalid("name must be between 4 and 40 characters")
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(in.Description)); n < 4 || n > 200 {
		return invalid("description must be between 4 and 200 characters")
	}
	if in.Duration <= 0 {
		return invalid("duration must be positive")
	}
	if in.HoursBeforeClose < 0 {
		return invalid("hours before close cannot be negative")
	}
	if in.ServerPort < 0 || in.ServerPort > 65535 {
		return invalid("server port %d out of range", in.ServerPort)
	}
	if checkDate && !in.ScheduledAt.IsZero() {
		closesAt := in.ScheduledAt.Add(-time.Duration(in.HoursBeforeClose) * time.Hour)
		if !closesAt.After(now) {
			return invalid("sign-ups would close in the past")
		}
	}
	for side, c := range in.Capacities {
		if !side.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrInvalidSide, side)
		}
		if c.Members < 0 || c.NonMembers < 0 {
			return invalid("capacity of %s cannot be negative", side)
		}
	}
	return nil
}

func applyEventInput(event *entities.Event, in input.EventInput) error {
	event.Name = strings.TrimSpace(in.Name)
	event.Description = strings.TrimSpace(in.Description)
	event.ScheduledAt = in.ScheduledAt.UTC()
	if in.ScheduledAt.IsZero() {
		event.ScheduledAt = time.Time{}
	}
	event.Duration = in.Duration
	event.HoursBeforeClose = in.HoursBeforeClose
	event.ServerAddr = strings.TrimSpace(in.ServerAddr)
	event.ServerPort = in.ServerPort
	event.Medical = in.Medical
	event.Terrain = in.Terrain
	event.Mods = in.Mods
	event.Misc = in.Misc

	event.Capacities = make(map[entities.Side]entities.Capacity, len(in.Capacities))
	for side, c := range in.Capacities {
		event.Capacities[side] = c
	}

	if len(in.MissionFile) > 0 {
		roles, err := missionRoles(in.MissionFile)
		if err != nil {
			return err
		}
		event.Roles = roles
	}
	return nil
}

func validateKindInput(kind entities.Kind, elective bool, in input.EventInput) error {
	if kind == entities.KindSelection && in.SelectionClass < 1 {
		return fmt.Errorf("%w: selection class is required", domain.ErrInvalidEvent)
	}
	if !elective || in.Interest == nil {
		return nil
	}
	t := in.Interest
	switch {
	case t.MinDaysNotice < 1 || t.MinDaysNotice > 100:
		return fmt.Errorf("%w: interest gauge notice must be between 1 and 100 days", domain.ErrInvalidEvent)
	case t.MinMembers < 0 || t.MinMembers > 100:
		return fmt.Errorf("%w: interest gauge members must be between 0 and 100", domain.ErrInvalidEvent)
	case t.MinNonMembers < 0 || t.MinNonMembers > 100:
		return fmt.Errorf("%w: interest gauge non-members must be between 0 and 100", domain.ErrInvalidEvent)
	case t.MinTotal < 1 || t.MinTotal > 100:
		return fmt.Errorf("%w: interest gauge total must be between 1 and 100", domain.ErrInvalidEvent)
	}
	return nil
}

// applyKindDetails sets the settings of the event's kind and drops those of
// any other kind. Elective thresholds left out of the input are kept.
func applyKindDetails(event *entities.Event, in input.EventInput) {
	previous := event.ElectiveDetails
	event.Mission, event.Selection, event.ElectiveDetails = nil, nil, nil
	switch event.Kind {
	case entities.KindMission:
		event.Mission = &entities.MissionDetails{COApprovalRequired: in.COApprovalRequired}
	case entities.KindSelection:
		event.Selection = &entities.SelectionDetails{Class: in.SelectionClass}
	}
	if !event.Elective {
		return
	}
	switch {
	case in.Interest != nil:
		thresholds := *in.Interest
		event.ElectiveDetails = &thresholds
	case previous != nil:
		event.ElectiveDetails = previous
	default:
		event.ElectiveDetails = &entities.ElectiveDetails{
			MinDaysNotice: entities.DefaultMinDaysNotice,
			MinTotal:      entities.DefaultMinTotal,
		}
	}
}

// missionRoles turns the playable slots of a mission.sqm into role groups.
func missionRoles(raw []byte) (map[entities.Side][]entities.RoleGroup, error) {
	text := string(raw)
	if !sqm.VersionCheck(text, 0) {
		return nil, fmt.Errorf("%w: no version found, the file may be binarized", domain.ErrInvalidMissionFile)
	}
	slots := sqm.AllSlots(text)
	bySide := map[entities.Side][]sqm.Group{
		entities.SideWest:        slots.West,
		entities.SideEast:        slots.East,
		entities.SideIndependent: slots.Independent,
		entities.SideCivilian:    slots.Civilian,
	}

	roles := make(map[entities.Side][]entities.RoleGroup)
	for side, groups := range bySide {
		for _, group := range groups {
			rg := entities.RoleGroup{Roles: make([]entities.Role, 0, len(group))}
			for _, slot := range group {
				rg.Roles = append(rg.Roles, entities.Role{Rank: slot.Rank, Description: slot.Description})
			}
			roles[side] = append(roles[side], rg)
		}
	}
	return roles, nil
}
