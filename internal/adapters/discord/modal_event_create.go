package discord

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
)

// handleCreate opens the first modal of a new event. The kind is chosen in
// the command since it decides which steps follow.
func (h *Handler) handleCreate(s Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	var (
		kind     string
		elective bool
		class    int
	)
	for _, opt := range opts {
		switch opt.Name {
		case "kind":
			kind = opt.StringValue()
		case "elective":
			elective = opt.BoolValue()
		case "class":
			class = int(opt.IntValue())
		}
	}
	if _, _, err := entities.ParseKind(kind, elective); err != nil {
		h.respondError(s, i, err)
		return
	}
	resp := h.generalModal(h.locale(i), createModalCustomID(kind, elective, class), nil)
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		log.Printf("❌ Create modal failed: %v", err)
	}
}

// handleCreateModalSubmit stores the new event as a draft, authored by the
// clan profile of whoever submitted it.
func (h *Handler) handleCreateModalSubmit(s Session, i *discordgo.InteractionCreate, rest string, values map[string]string) {
	ctx := context.Background()
	locale := h.locale(i)

	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		log.Printf("⚠️ Ignored create modal %q", rest)
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error.generic", nil))
		return
	}
	elective, _ := strconv.ParseBool(parts[1])
	class, _ := strconv.Atoi(parts[2])

	in := input.EventInput{Kind: parts[0], Elective: elective, SelectionClass: class}
	if err := applyGeneral(&in, values); err != nil {
		h.respondError(s, i, err)
		return
	}
	user, err := h.userUseCase.GetUserByDiscordID(ctx, interactionUserID(i))
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	event, err := h.eventUseCase.CreateEvent(ctx, user.ID, in)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	h.respondSteps(s, i, locale, "discord.event_created", event)
}
