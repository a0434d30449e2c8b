package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// handleEdit offers the editing steps of an existing event.
func (h *Handler) handleEdit(s Session, i *discordgo.InteractionCreate, eventID string) {
	event, err := h.eventUseCase.GetEvent(context.Background(), eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	h.respondSteps(s, i, h.locale(i), "discord.event_edit", event)
}
