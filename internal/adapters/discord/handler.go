package discord

import (
	"github.com/bwmarrin/discordgo"

	"clanops/internal/common/clock"
	"clanops/internal/ports/input"
)

// Session is the part of *discordgo.Session the handlers use.
type Session interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Translator renders messages and picks the locale closest to a client's.
type Translator interface {
	T(locale, key string, data map[string]any) string
	Match(preferred ...string) string
}

// Handler handles Discord interactions using use cases.
type Handler struct {
	eventUseCase      input.EventUseCase
	signUpUseCase     input.SignUpUseCase
	attendanceUseCase input.AttendanceUseCase
	userUseCase       input.UserUseCase
	translator        Translator
	clock             clock.Clock
	announceChannelID string
}

// NewHandler creates a Handler. Published events are announced in
// announceChannelID, or in the channel the command was run from when empty.
func NewHandler(
	eventUseCase input.EventUseCase,
	signUpUseCase input.SignUpUseCase,
	attendanceUseCase input.AttendanceUseCase,
	userUseCase input.UserUseCase,
	translator Translator,
	clk clock.Clock,
	announceChannelID string,
) *Handler {
	return &Handler{
		eventUseCase:      eventUseCase,
		signUpUseCase:     signUpUseCase,
		attendanceUseCase: attendanceUseCase,
		userUseCase:       userUseCase,
		translator:        translator,
		clock:             clk,
		announceChannelID: announceChannelID,
	}
}

func (h *Handler) locale(i *discordgo.InteractionCreate) string {
	return h.translator.Match(string(i.Locale))
}

// publicLocale is used for messages everyone sees: the guild's locale
// rather than the clicking user's.
func (h *Handler) publicLocale(i *discordgo.InteractionCreate) string {
	if i.GuildLocale != nil {
		return h.translator.Match(string(*i.GuildLocale))
	}
	return h.translator.Match()
}

// HandleInteraction routes an interaction to its handler.
func (h *Handler) HandleInteraction(s Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandName, adminCommandName:
			h.HandleCommand(s, i)
		}
	case discordgo.InteractionMessageComponent:
		h.HandleButton(s, i)
	case discordgo.InteractionModalSubmit:
		h.HandleModalSubmit(s, i)
	}
}
