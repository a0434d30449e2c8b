package discord

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"clanops/internal/domain/entities"
	pkgdiscord "clanops/pkg/discord"
)

const (
	signUpPrefix = "signup"
	cancelPrefix = "cancel"

	commitmentCertain = "certain"
	commitmentMaybe   = "maybe"
)

// signUpCustomID encodes a sign-up button as signup:<event>:<side>:<commitment>.
func signUpCustomID(eventID string, side entities.Side, maybe bool) string {
	commitment := commitmentCertain
	if maybe {
		commitment = commitmentMaybe
	}
	return strings.Join([]string{signUpPrefix, eventID, string(side), commitment}, ":")
}

func cancelCustomID(eventID string) string {
	return cancelPrefix + ":" + eventID
}

// buttonAction is a decoded button custom id.
type buttonAction struct {
	cancel  bool
	eventID string
	side    entities.Side
	maybe   bool
}

func parseCustomID(customID string) (buttonAction, error) {
	parts := strings.Split(customID, ":")
	switch {
	case len(parts) == 2 && parts[0] == cancelPrefix && parts[1] != "":
		return buttonAction{cancel: true, eventID: parts[1]}, nil
	case len(parts) == 4 && parts[0] == signUpPrefix && parts[1] != "":
		side, err := entities.ParseSide(parts[2])
		if err != nil {
			return buttonAction{}, err
		}
		switch parts[3] {
		case commitmentCertain, commitmentMaybe:
		default:
			return buttonAction{}, fmt.Errorf("unknown commitment %q", parts[3])
		}
		return buttonAction{eventID: parts[1], side: side, maybe: parts[3] == commitmentMaybe}, nil
	}
	return buttonAction{}, fmt.Errorf("unknown component %q", customID)
}

// buildComponents returns one row per open side plus a cancel row. Closed
// events only keep the cancel button while cancelling is still allowed.
func (h *Handler) buildComponents(locale string, event *entities.Event) []discordgo.MessageComponent {
	signable := event.Signable(h.clock.Now())
	if !signable.IsCancelable {
		return []discordgo.MessageComponent{}
	}

	var components []discordgo.MessageComponent
	if signable.IsSignable {
		for _, side := range event.SideChoices() {
			sideName := h.translator.T(locale, side.MessageID(), nil)
			components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    h.translator.T(locale, "discord.button_certain", map[string]any{"Side": sideName}),
					Style:    discordgo.SuccessButton,
					CustomID: signUpCustomID(event.ID, side, false),
				},
				discordgo.Button{
					Label:    h.translator.T(locale, "discord.button_maybe", map[string]any{"Side": sideName}),
					Style:    discordgo.SecondaryButton,
					CustomID: signUpCustomID(event.ID, side, true),
				},
			}})
		}
	}

	last := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    h.translator.T(locale, "discord.button_cancel", nil),
			Style:    discordgo.DangerButton,
			CustomID: cancelCustomID(event.ID),
		},
	}
	if event.CalendarLink != "" {
		last = append(last, discordgo.Button{
			Label: h.translator.T(locale, "discord.calendar", nil),
			Style: discordgo.LinkButton,
			URL:   event.CalendarLink,
		})
	}
	return append(components, discordgo.ActionsRow{Components: last})
}

func (h *Handler) eventMessage(locale string, event *entities.Event) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildEventEmbed(h.translator, locale, event, h.clock.Now())},
		Components: h.buildComponents(locale, event),
	}
}

// refreshMessage redraws an event message after a sign-up change.
func (h *Handler) refreshMessage(s Session, locale string, msg *discordgo.Message, event *entities.Event) {
	if msg == nil {
		return
	}
	send := h.eventMessage(locale, event)
	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         msg.ID,
		Channel:    msg.ChannelID,
		Embeds:     &send.Embeds,
		Components: &send.Components,
	}); err != nil {
		log.Printf("❌ Event message %s update failed: %v", msg.ID, err)
	}
}
