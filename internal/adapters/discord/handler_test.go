package discord

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmocks "clanops/internal/common/clock/mocks"
	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
	"clanops/internal/ports/input/mocks"
)

type stubTranslator struct{}

func (stubTranslator) T(locale, key string, _ map[string]any) string {
	return locale + ":" + key
}

func (stubTranslator) Match(preferred ...string) string {
	for _, p := range preferred {
		if strings.HasPrefix(p, "fr") {
			return "fr"
		}
	}
	return "en"
}

type fakeSession struct {
	responses []*discordgo.InteractionResponse
	sent      map[string]*discordgo.MessageSend
	edits     []*discordgo.MessageEdit
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sent == nil {
		f.sent = make(map[string]*discordgo.MessageSend)
	}
	f.sent[channelID] = data
	return &discordgo.Message{ID: "m-new", ChannelID: channelID}, nil
}

func (f *fakeSession) ChannelMessageEditComplex(m *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeSession) lastContent() string {
	if len(f.responses) == 0 {
		return ""
	}
	return f.responses[len(f.responses)-1].Data.Content
}

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	events     *mocks.MockEventUseCase
	signUps    *mocks.MockSignUpUseCase
	attendance *mocks.MockAttendanceUseCase
	users      *mocks.MockUserUseCase
	clock      *clockmocks.MockClock
	session    *fakeSession
	handler    *Handler
	testNow    time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.events = mocks.NewMockEventUseCase(s.ctrl)
	s.signUps = mocks.NewMockSignUpUseCase(s.ctrl)
	s.attendance = mocks.NewMockAttendanceUseCase(s.ctrl)
	s.users = mocks.NewMockUserUseCase(s.ctrl)
	s.clock = clockmocks.NewMockClock(s.ctrl)
	s.session = &fakeSession{}
	s.testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock.EXPECT().Now().Return(s.testNow).AnyTimes()

	s.handler = NewHandler(s.events, s.signUps, s.attendance, s.users, stubTranslator{}, s.clock, "announce")
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) openEvent() *entities.Event {
	return &entities.Event{
		ID:          "e1",
		Name:        "Operation Dawn",
		Published:   true,
		ScheduledAt: s.testNow.Add(48 * time.Hour),
		Duration:    120,
		Capacities: map[entities.Side]entities.Capacity{
			entities.SideWest: {Members: 10},
			entities.SideEast: {Members: 10},
		},
	}
}

func buttonInteraction(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "i1",
		Type:    discordgo.InteractionMessageComponent,
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID},
		Member:  &discordgo.Member{User: &discordgo.User{ID: "d1"}},
		Locale:  discordgo.Locale("fr"),
		Message: &discordgo.Message{ID: "m1", ChannelID: "c1"},
	}}
}

func commandInteraction(sub, eventID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "i2",
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: "c1",
		Member:    &discordgo.Member{User: &discordgo.User{ID: "d-admin"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: adminCommandName,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{{
				Name: sub,
				Type: discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{Name: "id", Type: discordgo.ApplicationCommandOptionString, Value: eventID},
				},
			}},
		},
	}}
}

func (s *HandlerTestSuite) TestParseCustomID() {
	action, err := parseCustomID(signUpCustomID("e1", entities.SideIndependent, true))
	s.Require().NoError(err)
	s.Equal(buttonAction{eventID: "e1", side: entities.SideIndependent, maybe: true}, action)

	action, err = parseCustomID(cancelCustomID("e1"))
	s.Require().NoError(err)
	s.Equal(buttonAction{cancel: true, eventID: "e1"}, action)

	for _, bad := range []string{"", "signup:e1:north:certain", "signup:e1:west:perhaps", "cancel:", "btn_join"} {
		_, err := parseCustomID(bad)
		s.Error(err, bad)
	}
}

func (s *HandlerTestSuite) TestBuildComponentsOpenEvent() {
	components := s.handler.buildComponents("en", s.openEvent())
	// West, East, then the cancel row.
	s.Require().Len(components, 3)
	west := components[0].(discordgo.ActionsRow).Components
	s.Equal("signup:e1:west:certain", west[0].(discordgo.Button).CustomID)
	s.Equal("signup:e1:west:maybe", west[1].(discordgo.Button).CustomID)
	s.Equal("cancel:e1", components[2].(discordgo.ActionsRow).Components[0].(discordgo.Button).CustomID)
}

func (s *HandlerTestSuite) TestBuildComponentsClosedEvent() {
	event := s.openEvent()
	event.HoursBeforeClose = 72
	event.CalendarLink = "https://discord.com/events/g/se"

	components := s.handler.buildComponents("en", event)
	s.Require().Len(components, 1)
	row := components[0].(discordgo.ActionsRow).Components
	s.Require().Len(row, 2)
	s.Equal(discordgo.LinkButton, row[1].(discordgo.Button).Style)

	event.Cancelled = true
	s.Empty(s.handler.buildComponents("en", event))
}

func (s *HandlerTestSuite) TestSignUpButton() {
	event := s.openEvent()
	s.users.EXPECT().GetUserByDiscordID(gomock.Any(), "d1").Return(&entities.User{ID: "u1"}, nil)
	s.signUps.EXPECT().
		SignUp(gomock.Any(), "fr", "e1", "u1", entities.SideWest, false).
		Return(input.Result{Success: true, Message: "inscrit"}, nil)
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(event, nil)

	s.handler.HandleInteraction(s.session, buttonInteraction("signup:e1:west:certain"))

	s.Equal("inscrit", s.session.lastContent())
	s.Equal(discordgo.MessageFlagsEphemeral, s.session.responses[0].Data.Flags)
	s.Require().Len(s.session.edits, 1)
	s.Equal("m1", s.session.edits[0].ID)
	s.Equal("c1", s.session.edits[0].Channel)
}

func (s *HandlerTestSuite) TestSignUpRefusedKeepsMessage() {
	s.users.EXPECT().GetUserByDiscordID(gomock.Any(), "d1").Return(&entities.User{ID: "u1"}, nil)
	s.signUps.EXPECT().
		SignUp(gomock.Any(), "fr", "e1", "u1", entities.SideEast, true).
		Return(input.Result{Message: "complet"}, nil)

	s.handler.HandleInteraction(s.session, buttonInteraction("signup:e1:east:maybe"))

	s.Equal("complet", s.session.lastContent())
	s.Empty(s.session.edits)
}

func (s *HandlerTestSuite) TestCancelButton() {
	s.users.EXPECT().GetUserByDiscordID(gomock.Any(), "d1").Return(&entities.User{ID: "u1"}, nil)
	s.signUps.EXPECT().Cancel(gomock.Any(), "fr", "e1", "u1").Return(input.Result{Success: true, Message: "annulé"}, nil)
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(s.openEvent(), nil)

	s.handler.HandleInteraction(s.session, buttonInteraction("cancel:e1"))

	s.Equal("annulé", s.session.lastContent())
	s.Len(s.session.edits, 1)
}

func (s *HandlerTestSuite) TestUnlinkedUser() {
	s.users.EXPECT().GetUserByDiscordID(gomock.Any(), "d1").Return(nil, domain.ErrUserNotFound)

	s.handler.HandleInteraction(s.session, buttonInteraction("signup:e1:west:certain"))

	s.Equal("fr:error.user_not_linked", s.session.lastContent())
}

func (s *HandlerTestSuite) TestUnknownButton() {
	s.handler.HandleInteraction(s.session, buttonInteraction("btn_join"))
	s.Equal("fr:error.generic", s.session.lastContent())
}

func (s *HandlerTestSuite) TestPublishAnnounces() {
	s.events.EXPECT().Publish(gomock.Any(), "en", "e1").Return(input.Result{Success: true, Message: "published"}, nil)
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(s.openEvent(), nil)

	s.handler.HandleInteraction(s.session, commandInteraction(subPublish, "e1"))

	s.Equal("published", s.session.lastContent())
	s.Require().Contains(s.session.sent, "announce")
	s.Equal("Operation Dawn", s.session.sent["announce"].Embeds[0].Title)
}

func (s *HandlerTestSuite) TestPublishRefused() {
	s.events.EXPECT().Publish(gomock.Any(), "en", "e1").Return(input.Result{Message: "already published"}, nil)

	s.handler.HandleInteraction(s.session, commandInteraction(subPublish, "e1"))

	s.Equal("already published", s.session.lastContent())
	s.Empty(s.session.sent)
}

func (s *HandlerTestSuite) TestCancelCommandError() {
	s.events.EXPECT().Cancel(gomock.Any(), "en", "e1").Return(input.Result{}, errors.New("boom"))

	s.handler.HandleInteraction(s.session, commandInteraction(subCancel, "e1"))

	s.Equal("en:error.generic", s.session.lastContent())
}

func (s *HandlerTestSuite) TestAttendanceCommand() {
	s.attendance.EXPECT().Generate(gomock.Any(), "e1").Return(&entities.Event{
		ID:          "e1",
		Name:        "Op",
		Attendances: []entities.Attendance{{UserID: "u1", Name: "Ghost", Minutes: 90}},
	}, nil)

	s.handler.HandleInteraction(s.session, commandInteraction(subAttendance, "e1"))

	s.Require().Len(s.session.responses, 1)
	data := s.session.responses[0].Data
	s.Equal("en:discord.attendance_generated", data.Content)
	s.Require().Len(data.Embeds, 1)
}

func (s *HandlerTestSuite) TestShowCommand() {
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(s.openEvent(), nil)

	s.handler.HandleInteraction(s.session, commandInteraction(subShow, "e1"))

	s.Require().Len(s.session.responses, 1)
	data := s.session.responses[0].Data
	s.Zero(data.Flags)
	s.Len(data.Components, 3)
}

func (s *HandlerTestSuite) TestCommandsRequireManageEventsForAdmin() {
	cmds := Commands()
	s.Require().Len(cmds, 2)
	s.Nil(cmds[0].DefaultMemberPermissions)
	s.Require().NotNil(cmds[1].DefaultMemberPermissions)
	s.Equal(int64(discordgo.PermissionManageEvents), *cmds[1].DefaultMemberPermissions)

	var subs []string
	for _, opt := range cmds[1].Options {
		subs = append(subs, opt.Name)
	}
	s.Equal([]string{subCreate, subEdit, subPublish, subCancel, subAttendance}, subs)
}
