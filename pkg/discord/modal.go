package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ModalValues returns the submitted text inputs of a modal keyed by their
// custom id, trimmed.
func ModalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, c := range data.Components {
		var row []discordgo.MessageComponent
		switch r := c.(type) {
		case *discordgo.ActionsRow:
			row = r.Components
		case discordgo.ActionsRow:
			row = r.Components
		}
		for _, rc := range row {
			switch in := rc.(type) {
			case *discordgo.TextInput:
				values[in.CustomID] = strings.TrimSpace(in.Value)
			case discordgo.TextInput:
				values[in.CustomID] = strings.TrimSpace(in.Value)
			}
		}
	}
	return values
}
