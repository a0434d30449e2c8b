package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// Bot is the Discord adapter.
type Bot struct {
	session  *discordgo.Session
	guildID  string
	handler  *Handler
	commands []*discordgo.ApplicationCommand
}

// NewSession creates an unopened bot session. It is shared with the calendar,
// which only needs the REST API.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return s, nil
}

// NewBot wires the handler to the session. Start opens the connection.
func NewBot(s *discordgo.Session, guildID string, handler *Handler) *Bot {
	bot := &Bot{
		session: s,
		guildID: guildID,
		handler: handler,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handler.HandleInteraction(s, i)
	})
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("🤖 Bot online as %s", r.User.Username)
	})
}

// Start opens the gateway connection and registers the slash commands in the
// configured guild.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	for _, cmd := range Commands() {
		created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd)
		if err != nil {
			log.Printf("⚠️ Command %s registration failed: %v", cmd.Name, err)
			continue
		}
		b.commands = append(b.commands, created)
	}
	return nil
}

// Stop removes the registered commands and closes the session.
func (b *Bot) Stop() {
	for _, cmd := range b.commands {
		if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.guildID, cmd.ID); err != nil {
			log.Printf("⚠️ Command %s removal failed: %v", cmd.Name, err)
		}
	}
	if err := b.session.Close(); err != nil {
		log.Printf("⚠️ Discord session close failed: %v", err)
	}
}
