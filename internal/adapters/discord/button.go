package discord

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"clanops/internal/ports/input"
)

// HandleButton signs the clicking user up, or cancels their sign-up, then
// redraws the event message. Editing step buttons open their modal.
func (h *Handler) HandleButton(s Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := h.locale(i)

	customID := i.MessageComponentData().CustomID
	if strings.HasPrefix(customID, stepPrefix+":") {
		h.handleStepButton(s, i, customID)
		return
	}

	action, err := parseCustomID(customID)
	if err != nil {
		log.Printf("⚠️ Ignored component: %v", err)
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error.generic", nil))
		return
	}

	user, err := h.userUseCase.GetUserByDiscordID(ctx, interactionUserID(i))
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	var res input.Result
	if action.cancel {
		res, err = h.signUpUseCase.Cancel(ctx, locale, action.eventID, user.ID)
	} else {
		res, err = h.signUpUseCase.SignUp(ctx, locale, action.eventID, user.ID, action.side, action.maybe)
	}
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	respondEphemeral(s, i.Interaction, res.Message)
	if !res.Success {
		return
	}

	event, err := h.eventUseCase.GetEvent(ctx, action.eventID)
	if err != nil {
		log.Printf("❌ Event %s reload failed: %v", action.eventID, err)
		return
	}
	h.refreshMessage(s, h.publicLocale(i), i.Message, event)
}
