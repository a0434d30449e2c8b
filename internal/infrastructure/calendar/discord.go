// Package calendar publishes events to an external calendar.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"clanops/internal/ports/output"
)

// scheduledEvents is the part of *discordgo.Session used here.
type scheduledEvents interface {
	GuildScheduledEventCreate(guildID string, params *discordgo.GuildScheduledEventParams, options ...discordgo.RequestOption) (*discordgo.GuildScheduledEvent, error)
	GuildScheduledEventDelete(guildID, eventID string, options ...discordgo.RequestOption) error
}

var _ output.Calendar = (*DiscordCalendar)(nil)

// DiscordCalendar publishes events as guild scheduled events. A calendar id is
// the id of the guild to publish to; an empty one means the default guild.
type DiscordCalendar struct {
	session      scheduledEvents
	defaultGuild string
}

func NewDiscordCalendar(session scheduledEvents, defaultGuild string) *DiscordCalendar {
	return &DiscordCalendar{session: session, defaultGuild: defaultGuild}
}

func (c *DiscordCalendar) guild(calendarID string) string {
	if calendarID == "" {
		return c.defaultGuild
	}
	return calendarID
}

func (c *DiscordCalendar) CreateEvent(ctx context.Context, calendarID string, event output.CalendarEvent) (string, error) {
	location := event.Location
	if location == "" {
		// External scheduled events must have a location.
		location = "TBA"
	}
	start := event.Start.UTC()
	end := event.End.UTC()
	if !end.After(start) {
		end = start.Add(time.Hour)
	}

	created, err := c.session.GuildScheduledEventCreate(c.guild(calendarID), &discordgo.GuildScheduledEventParams{
		Name:               event.Title,
		Description:        truncate(event.Description, 1000),
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: location},
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("create scheduled event: %w", err)
	}
	return created.ID, nil
}

func (c *DiscordCalendar) DeleteEvent(ctx context.Context, calendarID, externalID string) error {
	if err := c.session.GuildScheduledEventDelete(c.guild(calendarID), externalID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete scheduled event: %w", err)
	}
	return nil
}

func (c *DiscordCalendar) URL(calendarID, externalID string) string {
	return fmt.Sprintf("https://discord.com/events/%s/%s", c.guild(calendarID), externalID)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
