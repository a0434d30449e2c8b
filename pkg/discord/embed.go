package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"clanops/internal/domain/entities"
)

const embedColor = 0x5865F2

const (
	statusColorClosed    = 0xFEE75C
	statusColorCancelled = 0xED4245
	statusColorOver      = 0x99AAB5
)

// Translator renders an i18n message.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// EventStatus returns the i18n key describing where the event is in its
// lifecycle.
func EventStatus(e *entities.Event, now time.Time) string {
	switch {
	case e.Cancelled:
		return "discord.status_cancelled"
	case e.HasOccurred(now):
		return "discord.status_occurred"
	case !e.Published:
		return "discord.status_draft"
	case e.IsSignUpsClosed(now):
		return "discord.status_closed"
	}
	return "discord.status_published"
}

func statusColor(status string) int {
	switch status {
	case "discord.status_cancelled":
		return statusColorCancelled
	case "discord.status_occurred":
		return statusColorOver
	case "discord.status_closed":
		return statusColorClosed
	}
	return embedColor
}

// BuildEventEmbed renders the event and the sign-up counts of every side
// that takes sign-ups. Participants are not listed.
func BuildEventEmbed(t Translator, locale string, e *entities.Event, now time.Time) *discordgo.MessageEmbed {
	status := EventStatus(e, now)
	embed := &discordgo.MessageEmbed{
		Title:       e.Name,
		Description: e.Description,
		URL:         e.CalendarLink,
		Color:       statusColor(status),
		Footer:      &discordgo.MessageEmbedFooter{Text: e.ID},
	}

	add := func(nameKey, value string) {
		if value == "" {
			return
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   t.T(locale, nameKey, nil),
			Value:  value,
			Inline: true,
		})
	}
	add("discord.status", t.T(locale, status, nil))
	add("discord.when", FormatWithRelative(e.ScheduledAt))
	add("discord.closes", FormatEventDateTime(e.SignUpsCloseAt()))
	add("discord.server", e.Location())

	for _, side := range e.SideChoices() {
		c := e.Capacities[side]
		sides := []entities.Side{side}
		summary := t.T(locale, "discord.side_summary", map[string]any{
			"Certain":       e.SignedUpCount(entities.SignUpFilter{Sides: sides, Members: true, NonMembers: true, Certain: true}),
			"Maybe":         e.SignedUpCount(entities.SignUpFilter{Sides: sides, Members: true, NonMembers: true, Maybe: true}),
			"NonMembers":    e.SignedUpCount(entities.SignUpFilter{Sides: sides, NonMembers: true, Maybe: true, Certain: true}),
			"Max":           c.Members,
			"MaxNonMembers": c.NonMembers,
		})
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  t.T(locale, side.MessageID(), nil),
			Value: summary,
		})
	}
	return embed
}

// BuildAttendanceEmbed lists the derived attendance of an event.
func BuildAttendanceEmbed(t Translator, locale string, e *entities.Event) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s · %s", t.T(locale, "discord.attendance_title", nil), e.Name),
		Color: embedColor,
	}
	if len(e.Attendances) == 0 {
		embed.Description = t.T(locale, "discord.attendance_none", nil)
		return embed
	}

	const maxLen = 4000 // embed descriptions are capped at 4096
	var desc string
	for _, a := range e.Attendances {
		name := a.Name
		if a.UserID != "" {
			name = fmt.Sprintf("%s (%s)", a.Name, a.UserID)
		}
		line := t.T(locale, "discord.attendance_line", map[string]any{"Name": name, "Minutes": a.Minutes}) + "\n"
		if len(desc)+len(line) > maxLen {
			desc += "…"
			break
		}
		desc += line
	}
	embed.Description = desc
	return embed
}
