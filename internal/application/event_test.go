package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "clanops/internal/common/clock/mocks"
	uuidMocks "clanops/internal/common/uuid/mocks"
	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
	"clanops/internal/ports/output"
	"clanops/internal/ports/output/mocks"
)

const testMission = `version=53;
class Mission
{
	class Entities
	{
		class Item0
		{
			dataType="Group";
			side="East";
			class Entities
			{
				class Item0
				{
					dataType="Object";
					class Attributes
					{
						rank="LIEUTENANT";
						description="Platoon Lead";
						isPlayable=1;
					};
				};
			};
		};
	};
};
`

type EventServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockEventRepo  *mocks.MockEventRepository
	mockCalendar   *mocks.MockCalendar
	mockTranslator *mocks.MockT
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	service        *EventService
	ctx            context.Context

	testTime time.Time
	in       input.EventInput
}

func (s *EventServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEventRepo = mocks.NewMockEventRepository(s.mockCtrl)
	s.mockCalendar = mocks.NewMockCalendar(s.mockCtrl)
	s.mockTranslator = mocks.NewMockT(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockTranslator.EXPECT().T(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, key string, _ map[string]any) string { return key }).AnyTimes()

	s.in = input.EventInput{
		Kind:             "mission",
		Name:             "Operation Dawn",
		Description:      "Convoy escort through the valley",
		ScheduledAt:      s.testTime.Add(72 * time.Hour),
		Duration:         150,
		HoursBeforeClose: 12,
		ServerAddr:       "arma.example.org",
		ServerPort:       2302,
		Capacities: map[entities.Side]entities.Capacity{
			entities.SideWest: {Members: 20, NonMembers: 5},
		},
	}

	s.service = NewEventService(EventServiceConfig{
		EventRepo:  s.mockEventRepo,
		Calendar:   s.mockCalendar,
		Translator: s.mockTranslator,
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
		Locks:      NewEventLocks(),
		Calendars:  map[string]string{"missions": "cal-missions", "training": "cal-training"},
		BaseURL:    "https://clan.example.org/",
	})
}

func (s *EventServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}

func (s *EventServiceTestSuite) draft() *entities.Event {
	return &entities.Event{
		ID:               "evt-1",
		Kind:             entities.KindMission,
		Name:             s.in.Name,
		Description:      s.in.Description,
		ScheduledAt:      s.in.ScheduledAt,
		Duration:         s.in.Duration,
		HoursBeforeClose: s.in.HoursBeforeClose,
		ServerAddr:       s.in.ServerAddr,
		ServerPort:       s.in.ServerPort,
	}
}

func (s *EventServiceTestSuite) TestCreateEvent() {
	s.mockUUID.EXPECT().NewUUID().Return("evt-1")
	s.mockEventRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	event, err := s.service.CreateEvent(s.ctx, "author-1", s.in)
	s.Require().NoError(err)
	s.Equal("evt-1", event.ID)
	s.Equal("author-1", event.AuthorID)
	s.Equal(entities.KindMission, event.Kind)
	s.NotNil(event.Mission)
	s.Nil(event.ElectiveDetails)
	s.False(event.Published)
	s.Equal(entities.Capacity{Members: 20, NonMembers: 5}, event.Capacities[entities.SideWest])
	s.Equal(s.testTime, event.CreatedAt)
}

func (s *EventServiceTestSuite) TestCreateEventWithMissionFile() {
	s.in.MissionFile = []byte(testMission)
	s.mockUUID.EXPECT().NewUUID().Return("evt-1")
	s.mockEventRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	event, err := s.service.CreateEvent(s.ctx, "author-1", s.in)
	s.Require().NoError(err)
	s.Require().Len(event.Roles[entities.SideEast], 1)
	s.Equal([]entities.Role{{Rank: "LIEUTENANT", Description: "Platoon Lead"}}, event.Roles[entities.SideEast][0].Roles)
	s.Empty(event.Roles[entities.SideWest])
}

func (s *EventServiceTestSuite) TestCreateEventRejectsBinarizedMission() {
	s.in.MissionFile = []byte{0x00, 0x72, 0x61, 0x50}

	_, err := s.service.CreateEvent(s.ctx, "author-1", s.in)
	s.ErrorIs(err, domain.ErrInvalidMissionFile)
}

func (s *EventServiceTestSuite) TestCreateEventValidation() {
	negativeEast := map[entities.Side]entities.Capacity{entities.SideEast: {Members: -1}}
	cases := map[string]func(in *input.EventInput){
		"short name":         func(in *input.EventInput) { in.Name = "Op" },
		"long description":   func(in *input.EventInput) { in.Description = strings.Repeat("x", 201) },
		"zero duration":      func(in *input.EventInput) { in.Duration = 0 },
		"negative close":     func(in *input.EventInput) { in.HoursBeforeClose = -1 },
		"closes in the past": func(in *input.EventInput) { in.ScheduledAt = s.testTime.Add(6 * time.Hour) },
		"negative capacity":  func(in *input.EventInput) { in.Capacities = negativeEast },
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			in := s.in
			mutate(&in)
			_, err := s.service.CreateEvent(s.ctx, "author-1", in)
			s.ErrorIs(err, domain.ErrInvalidEvent)
		})
	}
}

func (s *EventServiceTestSuite) TestCreateEventInvalidKind() {
	s.in.Kind = "selection"
	s.in.Elective = true

	_, err := s.service.CreateEvent(s.ctx, "author-1", s.in)
	s.ErrorIs(err, domain.ErrInvalidKind)
}

func (s *EventServiceTestSuite) TestCreateUndatedDraft() {
	s.in.ScheduledAt = time.Time{}
	s.mockUUID.EXPECT().NewUUID().Return("evt-2")
	s.mockEventRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	event, err := s.service.CreateEvent(s.ctx, "author-1", s.in)
	s.Require().NoError(err)
	s.True(event.ScheduledAt.IsZero())
}

func (s *EventServiceTestSuite) TestEditPublishedEventKeepsName() {
	published := s.draft()
	published.Published = true
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(published, nil)

	s.in.Name = "Operation Dusk"
	_, err := s.service.EditEvent(s.ctx, "evt-1", s.in)
	s.ErrorIs(err, domain.ErrInvalidEvent)
}

func (s *EventServiceTestSuite) TestEditPublishedEventKeepsDate() {
	published := s.draft()
	published.Published = true
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(published, nil)

	s.in.ScheduledAt = s.in.ScheduledAt.Add(24 * time.Hour)
	_, err := s.service.EditEvent(s.ctx, "evt-1", s.in)
	s.ErrorIs(err, domain.ErrInvalidEvent)
}

func (s *EventServiceTestSuite) TestEditEvent() {
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(s.draft(), nil)
	s.mockEventRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	s.in.Kind = "training"
	s.in.Elective = true
	s.in.Description = "Rotary wing basics"
	event, err := s.service.EditEvent(s.ctx, "evt-1", s.in)
	s.Require().NoError(err)
	s.Equal(entities.KindTraining, event.Kind)
	s.Equal(&entities.ElectiveDetails{MinDaysNotice: 3, MinTotal: 3}, event.ElectiveDetails)
	s.Nil(event.Mission)
	s.Equal("Rotary wing basics", event.Description)
}

func (s *EventServiceTestSuite) TestCreateEventKindSettings() {
	s.mockUUID.EXPECT().NewUUID().Return("evt-1").Times(2)
	s.mockEventRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil).Times(2)

	s.in.Elective = true
	s.in.COApprovalRequired = true
	s.in.Interest = &entities.ElectiveDetails{MinDaysNotice: 7, MinMembers: 4, MinNonMembers: 1, MinTotal: 6}
	event, err := s.service.CreateEvent(s.ctx, "author-1", s.in)
	s.Require().NoError(err)
	s.Equal(&entities.MissionDetails{COApprovalRequired: true}, event.Mission)
	s.Equal(&entities.ElectiveDetails{MinDaysNotice: 7, MinMembers: 4, MinNonMembers: 1, MinTotal: 6}, event.ElectiveDetails)
	s.Nil(event.Selection)

	selection := s.in
	selection.Kind = "selection"
	selection.Elective = false
	selection.SelectionClass = 12
	selection.Interest = nil
	event, err = s.service.CreateEvent(s.ctx, "author-1", selection)
	s.Require().NoError(err)
	s.Equal(&entities.SelectionDetails{Class: 12}, event.Selection)
	s.Nil(event.Mission)
	s.True(event.Elective)
	s.Equal(&entities.ElectiveDetails{MinDaysNotice: 3, MinTotal: 3}, event.ElectiveDetails)
}

func (s *EventServiceTestSuite) TestCreateEventKindSettingsValidation() {
	cases := map[string]func(in *input.EventInput){
		"selection without class": func(in *input.EventInput) { in.Kind = "selection" },
		"zero days notice": func(in *input.EventInput) {
			in.Elective = true
			in.Interest = &entities.ElectiveDetails{MinTotal: 3}
		},
		"negative members": func(in *input.EventInput) {
			in.Elective = true
			in.Interest = &entities.ElectiveDetails{MinDaysNotice: 3, MinMembers: -1, MinTotal: 3}
		},
		"zero total": func(in *input.EventInput) {
			in.Elective = true
			in.Interest = &entities.ElectiveDetails{MinDaysNotice: 3}
		},
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			in := s.in
			mutate(&in)
			_, err := s.service.CreateEvent(s.ctx, "author-1", in)
			s.ErrorIs(err, domain.ErrInvalidEvent)
		})
	}
}

func (s *EventServiceTestSuite) TestEditEventKeepsInterestThresholds() {
	elective := s.draft()
	elective.Elective = true
	elective.Mission = &entities.MissionDetails{}
	elective.ElectiveDetails = &entities.ElectiveDetails{MinDaysNotice: 5, MinMembers: 2, MinTotal: 8}
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(elective, nil)
	s.mockEventRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)

	s.in.Elective = true
	s.in.COApprovalRequired = true
	event, err := s.service.EditEvent(s.ctx, "evt-1", s.in)
	s.Require().NoError(err)
	s.True(event.Mission.COApprovalRequired)
	s.Equal(&entities.ElectiveDetails{MinDaysNotice: 5, MinMembers: 2, MinTotal: 8}, event.ElectiveDetails)
}

func (s *EventServiceTestSuite) TestPublish() {
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(s.draft(), nil)
	s.mockCalendar.EXPECT().CreateEvent(s.ctx, "cal-missions", output.CalendarEvent{
		Title:       "Operation Dawn",
		Description: "Convoy escort through the valley Event page: https://clan.example.org/events/evt-1",
		Location:    "arma.example.org:2302",
		Start:       s.in.ScheduledAt,
		End:         s.in.ScheduledAt.Add(150 * time.Minute),
	}).Return("ext-9", nil)
	s.mockCalendar.EXPECT().URL("cal-missions", "ext-9").Return("https://calendar.example.org/ext-9")
	s.mockEventRepo.EXPECT().Update(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *entities.Event) error {
		s.True(e.Published)
		s.Equal("ext-9", e.CalendarEventID)
		s.Equal("https://calendar.example.org/ext-9", e.CalendarLink)
		return nil
	})

	res, err := s.service.Publish(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(entities.MsgPublishSuccess, res.Message)
}

func (s *EventServiceTestSuite) TestPublishCalendarFailureLeavesDraft() {
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(s.draft(), nil)
	s.mockCalendar.EXPECT().CreateEvent(s.ctx, "cal-missions", gomock.Any()).Return("", errors.New("quota exceeded"))

	res, err := s.service.Publish(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(entities.MsgPublishFailed, res.Message)
}

func (s *EventServiceTestSuite) TestPublishEmptyExternalID() {
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(s.draft(), nil)
	s.mockCalendar.EXPECT().CreateEvent(s.ctx, "cal-missions", gomock.Any()).Return("", nil)

	res, err := s.service.Publish(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.False(res.Success)
}

func (s *EventServiceTestSuite) TestPublishTwice() {
	published := s.draft()
	published.Published = true
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(published, nil)

	res, err := s.service.Publish(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(entities.MsgAlreadyPublished, res.Message)
}

func (s *EventServiceTestSuite) TestPublishAfterClose() {
	late := s.draft()
	late.ScheduledAt = s.testTime.Add(6 * time.Hour)
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(late, nil)

	res, err := s.service.Publish(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(entities.MsgSignUpDatePassed, res.Message)
}

func (s *EventServiceTestSuite) TestPublishRetryReusesCalendarEntry() {
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").DoAndReturn(func(context.Context, string) (*entities.Event, error) {
		return s.draft(), nil
	}).Times(2)
	s.mockCalendar.EXPECT().CreateEvent(s.ctx, "cal-missions", gomock.Any()).Return("ext-9", nil).Times(1)
	s.mockCalendar.EXPECT().URL("cal-missions", "ext-9").Return("link").Times(2)
	gomock.InOrder(
		s.mockEventRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(domain.ErrVersionConflict),
		s.mockEventRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil),
	)

	res, err := s.service.Publish(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.True(res.Success)
}

func (s *EventServiceTestSuite) TestPublishLostRaceRemovesCalendarEntry() {
	published := s.draft()
	published.Published = true
	gomock.InOrder(
		s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(s.draft(), nil),
		s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(published, nil),
	)
	s.mockCalendar.EXPECT().CreateEvent(s.ctx, "cal-missions", gomock.Any()).Return("ext-9", nil)
	s.mockCalendar.EXPECT().URL("cal-missions", "ext-9").Return("link")
	s.mockEventRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(domain.ErrVersionConflict)
	s.mockCalendar.EXPECT().DeleteEvent(s.ctx, "cal-missions", "ext-9").Return(nil)

	res, err := s.service.Publish(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(entities.MsgAlreadyPublished, res.Message)
}

func (s *EventServiceTestSuite) TestCancelDeletesCalendarEntry() {
	published := s.draft()
	published.Published = true
	published.CalendarEventID = "ext-9"
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(published, nil)
	s.mockEventRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)
	s.mockCalendar.EXPECT().DeleteEvent(s.ctx, "cal-missions", "ext-9").Return(errors.New("gone"))

	res, err := s.service.Cancel(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(entities.MsgCancelSuccess, res.Message)
}

func (s *EventServiceTestSuite) TestCancelDraftWithoutCalendarEntry() {
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(s.draft(), nil)
	s.mockEventRepo.EXPECT().Update(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *entities.Event) error {
		s.True(e.Cancelled)
		return nil
	})

	res, err := s.service.Cancel(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.True(res.Success)
}

func (s *EventServiceTestSuite) TestCancelTwice() {
	cancelled := s.draft()
	cancelled.Cancelled = true
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(cancelled, nil)

	res, err := s.service.Cancel(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(entities.MsgAlreadyCancelled, res.Message)
}

func (s *EventServiceTestSuite) TestCancelAfterEnd() {
	past := s.draft()
	past.ScheduledAt = s.testTime.Add(-3 * time.Hour)
	s.mockEventRepo.EXPECT().FindByID(s.ctx, "evt-1").Return(past, nil)

	res, err := s.service.Cancel(s.ctx, "en", "evt-1")
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(entities.MsgAlreadyOccurred, res.Message)
}
