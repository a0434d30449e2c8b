package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"clanops/internal/domain/entities"
	pkgdiscord "clanops/pkg/discord"
)

const (
	commandName      = "event"
	adminCommandName = "event-admin"
)

const (
	subShow       = "show"
	subCreate     = "create"
	subEdit       = "edit"
	subPublish    = "publish"
	subCancel     = "cancel"
	subAttendance = "attendance"
)

var manageEvents int64 = discordgo.PermissionManageEvents

// Commands returns the slash commands registered by the bot. Everything but
// show requires the Manage Events permission.
func Commands() []*discordgo.ApplicationCommand {
	idOption := []*discordgo.ApplicationCommandOption{{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "id",
		Description: "Event id",
		Required:    true,
	}}
	createOptions := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "kind",
			Description: "Event kind",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Mission", Value: string(entities.KindMission)},
				{Name: "Training", Value: string(entities.KindTraining)},
				{Name: "Selection", Value: string(entities.KindSelection)},
				{Name: "Misc", Value: string(entities.KindMisc)},
			},
		},
		{Type: discordgo.ApplicationCommandOptionBoolean, Name: "elective", Description: "Elective mission or training"},
		{Type: discordgo.ApplicationCommandOptionInteger, Name: "class", Description: "Selection class"},
	}
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandName,
			Description: "Show an event",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subShow, Description: "Post an event with its sign-up buttons", Options: idOption},
			},
		},
		{
			Name:                     adminCommandName,
			Description:              "Manage an event",
			DefaultMemberPermissions: &manageEvents,
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subCreate, Description: "Create a draft event", Options: createOptions},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subEdit, Description: "Edit an event step by step", Options: idOption},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subPublish, Description: "Open sign-ups and add the event to its calendar", Options: idOption},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subCancel, Description: "Cancel the event", Options: idOption},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: subAttendance, Description: "Generate the event attendance", Options: idOption},
			},
		},
	}
}

// HandleCommand runs a /event or /event-admin subcommand.
func (h *Handler) HandleCommand(s Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	var eventID string
	for _, opt := range sub.Options {
		if opt.Name == "id" {
			eventID = opt.StringValue()
		}
	}

	switch sub.Name {
	case subShow:
		h.handleShow(s, i, eventID)
	case subCreate:
		h.handleCreate(s, i, sub.Options)
	case subEdit:
		h.handleEdit(s, i, eventID)
	case subPublish:
		h.handlePublish(s, i, eventID)
	case subCancel:
		h.handleCancel(s, i, eventID)
	case subAttendance:
		h.handleAttendance(s, i, eventID)
	}
}

func (h *Handler) handleShow(s Session, i *discordgo.InteractionCreate, eventID string) {
	event, err := h.eventUseCase.GetEvent(context.Background(), eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	msg := h.eventMessage(h.publicLocale(i), event)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     msg.Embeds,
			Components: msg.Components,
		},
	})
	if err != nil {
		log.Printf("❌ Event %s display failed: %v", eventID, err)
	}
}

func (h *Handler) handlePublish(s Session, i *discordgo.InteractionCreate, eventID string) {
	ctx := context.Background()
	locale := h.locale(i)

	res, err := h.eventUseCase.Publish(ctx, locale, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, res.Message)
	if !res.Success {
		return
	}

	event, err := h.eventUseCase.GetEvent(ctx, eventID)
	if err != nil {
		log.Printf("❌ Event %s reload failed: %v", eventID, err)
		return
	}
	channelID := h.announceChannelID
	if channelID == "" {
		channelID = i.ChannelID
	}
	if _, err := s.ChannelMessageSendComplex(channelID, h.eventMessage(h.publicLocale(i), event)); err != nil {
		log.Printf("❌ Event %s announcement failed: %v", eventID, err)
	}
}

func (h *Handler) handleCancel(s Session, i *discordgo.InteractionCreate, eventID string) {
	res, err := h.eventUseCase.Cancel(context.Background(), h.locale(i), eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, res.Message)
}

func (h *Handler) handleAttendance(s Session, i *discordgo.InteractionCreate, eventID string) {
	locale := h.locale(i)
	event, err := h.attendanceUseCase.Generate(context.Background(), eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: h.translator.T(locale, "discord.attendance_generated", map[string]any{"Count": len(event.Attendances)}),
			Embeds:  []*discordgo.MessageEmbed{pkgdiscord.BuildAttendanceEmbed(h.translator, locale, event)},
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("❌ Attendance display failed for event %s: %v", eventID, err)
	}
}
