package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"clanops/internal/domain"
)

// interactionUserID returns the Discord id of whoever triggered i, in a
// guild or in DMs.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEphemeral(s Session, i *discordgo.Interaction, content string) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("❌ Interaction response failed: %v", err)
	}
}

func (h *Handler) respondError(s Session, i *discordgo.InteractionCreate, err error) {
	key := domain.MessageID(err)
	if key == "error.generic" {
		log.Printf("❌ Interaction %s failed: %v", i.ID, err)
	}
	respondEphemeral(s, i.Interaction, h.translator.T(h.locale(i), key, nil))
}
