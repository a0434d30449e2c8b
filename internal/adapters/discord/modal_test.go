package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/mock/gomock"

	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
)

func modalInteraction(customID string, values map[string]string) *discordgo.InteractionCreate {
	rows := make([]discordgo.MessageComponent, 0, len(values))
	for id, value := range values {
		rows = append(rows, &discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			&discordgo.TextInput{CustomID: id, Value: value},
		}})
	}
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:   "i3",
		Type: discordgo.InteractionModalSubmit,
		Data: discordgo.ModalSubmitInteractionData{CustomID: customID, Components: rows},
		Member: &discordgo.Member{
			User:        &discordgo.User{ID: "d-admin"},
			Permissions: discordgo.PermissionManageEvents,
		},
		Locale: discordgo.Locale("fr"),
	}}
}

func stepInteraction(customID string) *discordgo.InteractionCreate {
	i := buttonInteraction(customID)
	i.Member.Permissions = discordgo.PermissionManageEvents
	return i
}

func createInteraction(opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	i := commandInteraction(subCreate, "")
	i.Data = discordgo.ApplicationCommandInteractionData{
		Name: adminCommandName,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{{
			Name:    subCreate,
			Type:    discordgo.ApplicationCommandOptionSubCommand,
			Options: opts,
		}},
	}
	return i
}

func buttonIDs(components []discordgo.MessageComponent) []string {
	var ids []string
	for _, c := range components[0].(discordgo.ActionsRow).Components {
		ids = append(ids, c.(discordgo.Button).CustomID)
	}
	return ids
}

func textInputAt(data *discordgo.InteractionResponseData, row int) discordgo.TextInput {
	return data.Components[row].(discordgo.ActionsRow).Components[0].(discordgo.TextInput)
}

func (s *HandlerTestSuite) TestCreateCommandOpensModal() {
	s.handler.HandleInteraction(s.session, createInteraction(
		&discordgo.ApplicationCommandInteractionDataOption{Name: "kind", Type: discordgo.ApplicationCommandOptionString, Value: "mission"},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "elective", Type: discordgo.ApplicationCommandOptionBoolean, Value: true},
	))

	s.Require().Len(s.session.responses, 1)
	resp := s.session.responses[0]
	s.Equal(discordgo.InteractionResponseModal, resp.Type)
	s.Equal("event_modal:create:mission:true:0", resp.Data.CustomID)
	s.Equal("en:discord.modal_create_title", resp.Data.Title)
	s.Len(resp.Data.Components, 5)
	s.Empty(textInputAt(resp.Data, 0).Value)
}

func (s *HandlerTestSuite) TestCreateCommandRejectsElectiveSelection() {
	s.handler.HandleInteraction(s.session, createInteraction(
		&discordgo.ApplicationCommandInteractionDataOption{Name: "kind", Type: discordgo.ApplicationCommandOptionString, Value: "selection"},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "elective", Type: discordgo.ApplicationCommandOptionBoolean, Value: true},
	))

	s.Equal("en:error.invalid_event", s.session.lastContent())
}

func (s *HandlerTestSuite) TestCreateModalSubmit() {
	s.users.EXPECT().GetUserByDiscordID(gomock.Any(), "d-admin").Return(&entities.User{ID: "u-admin"}, nil)
	s.events.EXPECT().CreateEvent(gomock.Any(), "u-admin", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in input.EventInput) (*entities.Event, error) {
			s.Equal("selection", in.Kind)
			s.False(in.Elective)
			s.Equal(2, in.SelectionClass)
			s.Equal("Selection Alpha", in.Name)
			s.Equal("Entry tests", in.Description)
			s.True(in.ScheduledAt.Equal(time.Date(2025, 6, 10, 20, 30, 0, 0, time.UTC)), in.ScheduledAt)
			s.Equal(120, in.Duration)
			return &entities.Event{ID: "e9", Kind: entities.KindSelection, Elective: true, Name: in.Name}, nil
		})

	s.handler.HandleInteraction(s.session, modalInteraction("event_modal:create:selection:false:2", map[string]string{
		fieldName:        "Selection Alpha",
		fieldDescription: "Entry tests",
		fieldDate:        "10/06/2025",
		fieldTime:        "20:30",
		fieldDuration:    "120",
	}))

	s.Require().Len(s.session.responses, 1)
	data := s.session.responses[0].Data
	s.Equal("fr:discord.event_created", data.Content)
	s.Equal(discordgo.MessageFlagsEphemeral, data.Flags)
	s.Equal([]string{
		"event_step:general:e9",
		"event_step:capacities:e9",
		"event_step:details:e9",
		"event_step:settings:e9",
	}, buttonIDs(data.Components))
}

func (s *HandlerTestSuite) TestCreateModalSubmitBadDate() {
	s.handler.HandleInteraction(s.session, modalInteraction("event_modal:create:mission:false:0", map[string]string{
		fieldName:        "Operation Dawn",
		fieldDescription: "Night raid",
		fieldDate:        "2025-06-10",
		fieldTime:        "20:30",
		fieldDuration:    "120",
	}))

	s.Equal("fr:error.invalid_event", s.session.lastContent())
}

func (s *HandlerTestSuite) TestCreateModalSubmitUnlinkedUser() {
	s.users.EXPECT().GetUserByDiscordID(gomock.Any(), "d-admin").Return(nil, domain.ErrUserNotFound)

	s.handler.HandleInteraction(s.session, modalInteraction("event_modal:create:mission:false:0", map[string]string{
		fieldName:        "Operation Dawn",
		fieldDescription: "Night raid",
		fieldDuration:    "120",
	}))

	s.Equal("fr:error.user_not_linked", s.session.lastContent())
}

func (s *HandlerTestSuite) TestModalSubmitRequiresManageEvents() {
	i := modalInteraction("event_modal:details:e1", map[string]string{fieldServer: "1.2.3.4:2302"})
	i.Member.Permissions = 0

	s.handler.HandleInteraction(s.session, i)

	s.Equal("fr:error.forbidden", s.session.lastContent())
}

func (s *HandlerTestSuite) TestStepButtonRequiresManageEvents() {
	s.handler.HandleInteraction(s.session, buttonInteraction("event_step:details:e1"))
	s.Equal("fr:error.forbidden", s.session.lastContent())
}

func (s *HandlerTestSuite) TestStepButtonOpensPrefilledModal() {
	event := s.openEvent()
	event.Capacities[entities.SideEast] = entities.Capacity{Members: 10, NonMembers: 3}
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(event, nil)

	s.handler.HandleInteraction(s.session, stepInteraction("event_step:capacities:e1"))

	s.Require().Len(s.session.responses, 1)
	resp := s.session.responses[0]
	s.Equal(discordgo.InteractionResponseModal, resp.Type)
	s.Equal("event_modal:capacities:e1", resp.Data.CustomID)
	s.Require().Len(resp.Data.Components, 4)
	s.Equal("10/0", textInputAt(resp.Data, 0).Value)
	s.Equal("10/3", textInputAt(resp.Data, 1).Value)
	s.Empty(textInputAt(resp.Data, 2).Value)
}

func (s *HandlerTestSuite) TestStepButtonPrefillsGeneral() {
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(s.openEvent(), nil)

	s.handler.HandleInteraction(s.session, stepInteraction("event_step:general:e1"))

	data := s.session.responses[0].Data
	s.Equal("event_modal:general:e1", data.CustomID)
	s.Equal("Operation Dawn", textInputAt(data, 0).Value)
	s.Equal("03/06/2025", textInputAt(data, 2).Value)
	s.Equal("12:00", textInputAt(data, 3).Value)
	s.Equal("120", textInputAt(data, 4).Value)
}

func (s *HandlerTestSuite) TestSettingsStepUnavailableForPlainTraining() {
	event := s.openEvent()
	event.Kind = entities.KindTraining
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(event, nil)

	s.handler.HandleInteraction(s.session, stepInteraction("event_step:settings:e1"))

	s.Equal("fr:error.generic", s.session.lastContent())
}

func (s *HandlerTestSuite) TestCapacitiesModalSubmit() {
	event := s.openEvent()
	event.Kind = entities.KindMission
	event.Terrain = "Altis"
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(event, nil)
	s.events.EXPECT().EditEvent(gomock.Any(), "e1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in input.EventInput) (*entities.Event, error) {
			s.Equal(map[entities.Side]entities.Capacity{
				entities.SideWest:        {Members: 12, NonMembers: 2},
				entities.SideIndependent: {Members: 4},
			}, in.Capacities)
			s.Equal("mission", in.Kind)
			s.Equal("Operation Dawn", in.Name)
			s.Equal("Altis", in.Terrain)
			s.True(in.ScheduledAt.Equal(event.ScheduledAt))
			return event, nil
		})

	s.handler.HandleInteraction(s.session, modalInteraction("event_modal:capacities:e1", map[string]string{
		"west": "12/2",
		"east": "",
		"ind":  "4",
		"civ":  "",
	}))

	s.Equal("fr:discord.event_saved", s.session.lastContent())
}

func (s *HandlerTestSuite) TestCapacitiesModalRejectsGarbage() {
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(s.openEvent(), nil)

	s.handler.HandleInteraction(s.session, modalInteraction("event_modal:capacities:e1", map[string]string{
		"west": "twelve",
	}))

	s.Equal("fr:error.invalid_event", s.session.lastContent())
}

func (s *HandlerTestSuite) TestDetailsModalSubmit() {
	event := s.openEvent()
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(event, nil)
	s.events.EXPECT().EditEvent(gomock.Any(), "e1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in input.EventInput) (*entities.Event, error) {
			s.Equal("play.example.org", in.ServerAddr)
			s.Equal(2302, in.ServerPort)
			s.Equal(6, in.HoursBeforeClose)
			s.Equal("Tanoa", in.Terrain)
			s.Equal("ACE3", in.Mods)
			s.Equal("Advanced", in.Medical)
			return event, nil
		})

	s.handler.HandleInteraction(s.session, modalInteraction("event_modal:details:e1", map[string]string{
		fieldServer:     "play.example.org:2302",
		fieldCloseHours: "6",
		fieldTerrain:    "Tanoa",
		fieldMods:       "ACE3",
		fieldMedical:    "Advanced",
	}))

	s.Equal("fr:discord.event_saved", s.session.lastContent())
}

func (s *HandlerTestSuite) TestDetailsModalRejectsServerWithoutPort() {
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(s.openEvent(), nil)

	s.handler.HandleInteraction(s.session, modalInteraction("event_modal:details:e1", map[string]string{
		fieldServer: "play.example.org",
	}))

	s.Equal("fr:error.invalid_event", s.session.lastContent())
}

func (s *HandlerTestSuite) TestSettingsModalSubmit() {
	event := s.openEvent()
	event.Kind = entities.KindMission
	event.Elective = true
	event.Mission = &entities.MissionDetails{}
	event.ElectiveDetails = &entities.ElectiveDetails{MinDaysNotice: 3, MinTotal: 3}
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(event, nil)
	s.events.EXPECT().EditEvent(gomock.Any(), "e1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in input.EventInput) (*entities.Event, error) {
			s.True(in.Elective)
			s.True(in.COApprovalRequired)
			s.Equal(&entities.ElectiveDetails{MinDaysNotice: 5, MinMembers: 2, MinTotal: 6}, in.Interest)
			return event, nil
		})

	s.handler.HandleInteraction(s.session, modalInteraction("event_modal:settings:e1", map[string]string{
		fieldCOApproval:    "fr:discord.yes",
		fieldMinDaysNotice: "5",
		fieldMinMembers:    "2",
		fieldMinNonMembers: "",
		fieldMinTotal:      "6",
	}))

	s.Equal("fr:discord.event_saved", s.session.lastContent())
}

func (s *HandlerTestSuite) TestSettingsModalEditError() {
	event := s.openEvent()
	event.Kind = entities.KindSelection
	event.Elective = true
	event.Selection = &entities.SelectionDetails{Class: 1}
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(event, nil)
	s.events.EXPECT().EditEvent(gomock.Any(), "e1", gomock.Any()).Return(nil, domain.ErrInvalidEvent)

	s.handler.HandleInteraction(s.session, modalInteraction("event_modal:settings:e1", map[string]string{
		fieldClass:         "0",
		fieldMinDaysNotice: "3",
		fieldMinMembers:    "0",
		fieldMinNonMembers: "0",
		fieldMinTotal:      "3",
	}))

	s.Equal("fr:error.invalid_event", s.session.lastContent())
}

func (s *HandlerTestSuite) TestEditCommandOffersSteps() {
	event := s.openEvent()
	event.Kind = entities.KindTraining
	s.events.EXPECT().GetEvent(gomock.Any(), "e1").Return(event, nil)

	s.handler.HandleInteraction(s.session, commandInteraction(subEdit, "e1"))

	data := s.session.responses[0].Data
	s.Equal("en:discord.event_edit", data.Content)
	s.Equal([]string{"event_step:general:e1", "event_step:capacities:e1", "event_step:details:e1"}, buttonIDs(data.Components))
}

func (s *HandlerTestSuite) TestInputFromEventRoundTrips() {
	event := s.openEvent()
	event.Kind = entities.KindSelection
	event.Elective = true
	event.Selection = &entities.SelectionDetails{Class: 3}
	event.ElectiveDetails = &entities.ElectiveDetails{MinDaysNotice: 4, MinTotal: 5}

	in := inputFromEvent(event)
	s.Equal("selection", in.Kind)
	s.False(in.Elective)
	s.Equal(3, in.SelectionClass)
	s.Equal(event.Capacities, in.Capacities)
	s.Require().NotNil(in.Interest)
	s.Equal(*event.ElectiveDetails, *in.Interest)

	in.Interest.MinTotal = 9
	s.Equal(5, event.ElectiveDetails.MinTotal)
}
