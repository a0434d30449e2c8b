package discord

import (
	"context"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
	pkgdiscord "clanops/pkg/discord"
)

// Event editing is split in steps, one modal each, since a modal holds at
// most five inputs. Every step after creation edits the stored event, so no
// state is kept between interactions.
const (
	modalPrefix = "event_modal"
	stepPrefix  = "event_step"

	modalCreate = "create"

	stepGeneral    = "general"
	stepCapacities = "capacities"
	stepDetails    = "details"
	stepSettings   = "settings"
)

// Text input custom ids.
const (
	fieldName          = "name"
	fieldDescription   = "description"
	fieldDate          = "date"
	fieldTime          = "time"
	fieldDuration      = "duration"
	fieldServer        = "server"
	fieldCloseHours    = "close_hours"
	fieldMedical       = "medical"
	fieldTerrain       = "terrain"
	fieldMods          = "mods"
	fieldCOApproval    = "co_approval"
	fieldClass         = "class"
	fieldMinDaysNotice = "min_days_notice"
	fieldMinMembers    = "min_members"
	fieldMinNonMembers = "min_non_members"
	fieldMinTotal      = "min_total"
)

func stepCustomID(step, eventID string) string {
	return stepPrefix + ":" + step + ":" + eventID
}

func modalCustomID(step, eventID string) string {
	return modalPrefix + ":" + step + ":" + eventID
}

// createModalCustomID carries what the create command asked for until the
// first modal is submitted: event_modal:create:<kind>:<elective>:<class>.
func createModalCustomID(kind string, elective bool, class int) string {
	return strings.Join([]string{modalPrefix, modalCreate, kind, strconv.FormatBool(elective), strconv.Itoa(class)}, ":")
}

// parseStepCustomID splits <prefix>:<step>:<rest>.
func parseStepCustomID(prefix, customID string) (step, rest string, ok bool) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] != prefix || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// canManageEvents reports whether the member running i holds Manage Events.
// Slash commands are gated by Discord, buttons and modals are not.
func canManageEvents(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionManageEvents != 0
}

// hasSettings reports whether an event has a settings step.
func hasSettings(event *entities.Event) bool {
	return event.Elective || event.Kind == entities.KindMission || event.Kind == entities.KindSelection
}

func (h *Handler) stepButtons(locale string, event *entities.Event) []discordgo.MessageComponent {
	steps := []string{stepGeneral, stepCapacities, stepDetails}
	if hasSettings(event) {
		steps = append(steps, stepSettings)
	}
	buttons := make([]discordgo.MessageComponent, 0, len(steps))
	for _, step := range steps {
		buttons = append(buttons, discordgo.Button{
			Label:    h.translator.T(locale, "discord.step_"+step, nil),
			Style:    discordgo.SecondaryButton,
			CustomID: stepCustomID(step, event.ID),
		})
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func textInput(customID, label, value string, style discordgo.TextInputStyle, required bool) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{CustomID: customID, Label: label, Style: style, Required: required, Value: value},
	}}
}

func itoaOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// generalModal opens the first step. event is nil on creation.
func (h *Handler) generalModal(locale, customID string, event *entities.Event) *discordgo.InteractionResponse {
	var name, description, dateStr, timeStr, duration string
	title := h.translator.T(locale, "discord.modal_create_title", nil)
	if event != nil {
		title = h.translator.T(locale, "discord.modal_general_title", nil)
		name, description = event.Name, event.Description
		dateStr, timeStr = pkgdiscord.SplitEventDateTime(event.ScheduledAt)
		duration = itoaOrEmpty(event.Duration)
	}
	label := func(field string) string { return h.translator.T(locale, "discord.label_"+field, nil) }
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customID,
			Title:    title,
			Components: []discordgo.MessageComponent{
				textInput(fieldName, label(fieldName), name, discordgo.TextInputShort, true),
				textInput(fieldDescription, label(fieldDescription), description, discordgo.TextInputParagraph, true),
				textInput(fieldDate, label(fieldDate), dateStr, discordgo.TextInputShort, false),
				textInput(fieldTime, label(fieldTime), timeStr, discordgo.TextInputShort, false),
				textInput(fieldDuration, label(fieldDuration), duration, discordgo.TextInputShort, true),
			},
		},
	}
}

func (h *Handler) capacitiesModal(locale string, event *entities.Event) *discordgo.InteractionResponse {
	sides := entities.AllSides()
	components := make([]discordgo.MessageComponent, 0, len(sides))
	for _, side := range sides {
		c := event.Capacities[side]
		value := ""
		if c.Members > 0 || c.NonMembers > 0 {
			value = fmt.Sprintf("%d/%d", c.Members, c.NonMembers)
		}
		label := h.translator.T(locale, "discord.label_capacity", map[string]any{
			"Side": h.translator.T(locale, "side."+string(side), nil),
		})
		components = append(components, textInput(string(side), label, value, discordgo.TextInputShort, false))
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   modalCustomID(stepCapacities, event.ID),
			Title:      h.translator.T(locale, "discord.modal_capacities_title", nil),
			Components: components,
		},
	}
}

func (h *Handler) detailsModal(locale string, event *entities.Event) *discordgo.InteractionResponse {
	label := func(field string) string { return h.translator.T(locale, "discord.label_"+field, nil) }
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: modalCustomID(stepDetails, event.ID),
			Title:    h.translator.T(locale, "discord.modal_details_title", nil),
			Components: []discordgo.MessageComponent{
				textInput(fieldServer, label(fieldServer), event.Location(), discordgo.TextInputShort, false),
				textInput(fieldCloseHours, label(fieldCloseHours), itoaOrEmpty(event.HoursBeforeClose), discordgo.TextInputShort, false),
				textInput(fieldTerrain, label(fieldTerrain), event.Terrain, discordgo.TextInputShort, false),
				textInput(fieldMods, label(fieldMods), event.Mods, discordgo.TextInputParagraph, false),
				textInput(fieldMedical, label(fieldMedical), event.Medical, discordgo.TextInputShort, false),
			},
		},
	}
}

// settingsModal holds the kind settings: CO approval for missions, the class
// of a selection and the interest thresholds of elective events.
func (h *Handler) settingsModal(locale string, event *entities.Event) *discordgo.InteractionResponse {
	label := func(field string) string { return h.translator.T(locale, "discord.label_"+field, nil) }
	var components []discordgo.MessageComponent
	switch event.Kind {
	case entities.KindMission:
		value := h.translator.T(locale, "discord.no", nil)
		if event.Mission != nil && event.Mission.COApprovalRequired {
			value = h.translator.T(locale, "discord.yes", nil)
		}
		components = append(components, textInput(fieldCOApproval, label(fieldCOApproval), value, discordgo.TextInputShort, true))
	case entities.KindSelection:
		value := ""
		if event.Selection != nil {
			value = itoaOrEmpty(event.Selection.Class)
		}
		components = append(components, textInput(fieldClass, label(fieldClass), value, discordgo.TextInputShort, true))
	}
	if event.Elective {
		d := entities.ElectiveDetails{MinDaysNotice: entities.DefaultMinDaysNotice, MinTotal: entities.DefaultMinTotal}
		if event.ElectiveDetails != nil {
			d = *event.ElectiveDetails
		}
		components = append(components,
			textInput(fieldMinDaysNotice, label(fieldMinDaysNotice), strconv.Itoa(d.MinDaysNotice), discordgo.TextInputShort, true),
			textInput(fieldMinMembers, label(fieldMinMembers), strconv.Itoa(d.MinMembers), discordgo.TextInputShort, true),
			textInput(fieldMinNonMembers, label(fieldMinNonMembers), strconv.Itoa(d.MinNonMembers), discordgo.TextInputShort, true),
			textInput(fieldMinTotal, label(fieldMinTotal), strconv.Itoa(d.MinTotal), discordgo.TextInputShort, true),
		)
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   modalCustomID(stepSettings, event.ID),
			Title:      h.translator.T(locale, "discord.modal_settings_title", nil),
			Components: components,
		},
	}
}

// handleStepButton opens the modal of an editing step, prefilled from the
// stored event.
func (h *Handler) handleStepButton(s Session, i *discordgo.InteractionCreate, customID string) {
	locale := h.locale(i)
	if !canManageEvents(i) {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error.forbidden", nil))
		return
	}
	step, eventID, ok := parseStepCustomID(stepPrefix, customID)
	if !ok {
		log.Printf("⚠️ Ignored step button %q", customID)
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error.generic", nil))
		return
	}
	event, err := h.eventUseCase.GetEvent(context.Background(), eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	var resp *discordgo.InteractionResponse
	switch step {
	case stepGeneral:
		resp = h.generalModal(locale, modalCustomID(stepGeneral, event.ID), event)
	case stepCapacities:
		resp = h.capacitiesModal(locale, event)
	case stepDetails:
		resp = h.detailsModal(locale, event)
	case stepSettings:
		if !hasSettings(event) {
			respondEphemeral(s, i.Interaction, h.translator.T(locale, "error.generic", nil))
			return
		}
		resp = h.settingsModal(locale, event)
	default:
		log.Printf("⚠️ Unknown step %q", step)
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error.generic", nil))
		return
	}
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		log.Printf("❌ Modal %s failed for event %s: %v", step, eventID, err)
	}
}

// HandleModalSubmit routes a submitted modal by its custom id.
func (h *Handler) HandleModalSubmit(s Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	locale := h.locale(i)
	if !canManageEvents(i) {
		respondEphemeral(s, i.Interaction, h.translator.T(locale, "error.forbidden", nil))
		return
	}
	step, rest, ok := parseStepCustomID(modalPrefix, data.CustomID)
	if !ok {
		log.Printf("⚠️ Ignored modal %q", data.CustomID)
		return
	}
	values := pkgdiscord.ModalValues(data)
	if step == modalCreate {
		h.handleCreateModalSubmit(s, i, rest, values)
		return
	}

	var apply func(in *input.EventInput) error
	switch step {
	case stepGeneral:
		apply = func(in *input.EventInput) error { return applyGeneral(in, values) }
	case stepCapacities:
		apply = func(in *input.EventInput) error { return applyCapacities(in, values) }
	case stepDetails:
		apply = func(in *input.EventInput) error { return applyDetails(in, values) }
	case stepSettings:
		apply = func(in *input.EventInput) error { return h.applySettings(locale, in, values) }
	default:
		log.Printf("⚠️ Ignored modal %q", data.CustomID)
		return
	}
	h.saveStep(s, i, rest, apply)
}

// saveStep rebuilds the input from the stored event, applies the submitted
// step on top and saves it.
func (h *Handler) saveStep(s Session, i *discordgo.InteractionCreate, eventID string, apply func(in *input.EventInput) error) {
	ctx := context.Background()
	locale := h.locale(i)

	event, err := h.eventUseCase.GetEvent(ctx, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	in := inputFromEvent(event)
	if err := apply(&in); err != nil {
		h.respondError(s, i, err)
		return
	}
	event, err = h.eventUseCase.EditEvent(ctx, eventID, in)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	log.Printf("✅ Event %s edited by %s", event.ID, interactionUserID(i))
	h.respondSteps(s, i, locale, "discord.event_saved", event)
}

// respondSteps confirms a step and offers the buttons of every step.
func (h *Handler) respondSteps(s Session, i *discordgo.InteractionCreate, locale, key string, event *entities.Event) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    h.translator.T(locale, key, map[string]any{"ID": event.ID, "Name": event.Name}),
			Components: h.stepButtons(locale, event),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("❌ Interaction response failed: %v", err)
	}
}

// inputFromEvent returns the input that would leave event unchanged.
func inputFromEvent(event *entities.Event) input.EventInput {
	in := input.EventInput{
		Kind:             string(event.Kind),
		Elective:         event.Elective,
		Name:             event.Name,
		Description:      event.Description,
		ScheduledAt:      event.ScheduledAt,
		Duration:         event.Duration,
		HoursBeforeClose: event.HoursBeforeClose,
		ServerAddr:       event.ServerAddr,
		ServerPort:       event.ServerPort,
		Capacities:       make(map[entities.Side]entities.Capacity, len(event.Capacities)),
		Medical:          event.Medical,
		Terrain:          event.Terrain,
		Mods:             event.Mods,
		Misc:             event.Misc,
	}
	for side, c := range event.Capacities {
		in.Capacities[side] = c
	}
	// Selection and misc events are elective by kind and cannot be asked so.
	if event.Kind == entities.KindSelection || event.Kind == entities.KindMisc {
		in.Elective = false
	}
	if event.Mission != nil {
		in.COApprovalRequired = event.Mission.COApprovalRequired
	}
	if event.Selection != nil {
		in.SelectionClass = event.Selection.Class
	}
	if event.ElectiveDetails != nil {
		d := *event.ElectiveDetails
		in.Interest = &d
	}
	return in
}

func invalidField(field, value string) error {
	return fmt.Errorf("%w: %s %q", domain.ErrInvalidEvent, field, value)
}

// parseOptionalInt reads a whole number, empty meaning zero.
func parseOptionalInt(field, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, invalidField(field, value)
	}
	return n, nil
}

func applyGeneral(in *input.EventInput, values map[string]string) error {
	scheduledAt, err := pkgdiscord.ParseEventDateTime(values[fieldDate], values[fieldTime])
	if err != nil {
		return err
	}
	duration, err := parseOptionalInt(fieldDuration, values[fieldDuration])
	if err != nil {
		return err
	}
	in.Name = values[fieldName]
	in.Description = values[fieldDescription]
	in.ScheduledAt = scheduledAt
	in.Duration = duration
	return nil
}

// parseCapacity reads "members/non-members"; a single number means no
// non-members.
func parseCapacity(value string) (entities.Capacity, error) {
	if value == "" {
		return entities.Capacity{}, nil
	}
	members, nonMembers, found := strings.Cut(value, "/")
	m, err := strconv.Atoi(strings.TrimSpace(members))
	if err != nil {
		return entities.Capacity{}, invalidField("capacity", value)
	}
	c := entities.Capacity{Members: m}
	if found {
		if c.NonMembers, err = strconv.Atoi(strings.TrimSpace(nonMembers)); err != nil {
			return entities.Capacity{}, invalidField("capacity", value)
		}
	}
	return c, nil
}

func applyCapacities(in *input.EventInput, values map[string]string) error {
	capacities := make(map[entities.Side]entities.Capacity)
	for _, side := range entities.AllSides() {
		c, err := parseCapacity(values[string(side)])
		if err != nil {
			return err
		}
		if c.Members > 0 || c.NonMembers > 0 {
			capacities[side] = c
		}
	}
	in.Capacities = capacities
	return nil
}

func applyDetails(in *input.EventInput, values map[string]string) error {
	addr, port := "", 0
	if server := values[fieldServer]; server != "" {
		host, portStr, err := net.SplitHostPort(server)
		if err != nil {
			return invalidField(fieldServer, server)
		}
		if port, err = strconv.Atoi(portStr); err != nil {
			return invalidField(fieldServer, server)
		}
		addr = host
	}
	closeHours, err := parseOptionalInt(fieldCloseHours, values[fieldCloseHours])
	if err != nil {
		return err
	}
	in.ServerAddr, in.ServerPort = addr, port
	in.HoursBeforeClose = closeHours
	in.Terrain = values[fieldTerrain]
	in.Mods = values[fieldMods]
	in.Medical = values[fieldMedical]
	return nil
}

// applySettings only reads the inputs the settings modal showed for the
// event's kind.
func (h *Handler) applySettings(locale string, in *input.EventInput, values map[string]string) error {
	if v, ok := values[fieldCOApproval]; ok {
		approval, err := h.parseYesNo(locale, v)
		if err != nil {
			return err
		}
		in.COApprovalRequired = approval
	}
	if v, ok := values[fieldClass]; ok {
		class, err := parseOptionalInt(fieldClass, v)
		if err != nil {
			return err
		}
		in.SelectionClass = class
	}
	if _, ok := values[fieldMinTotal]; ok {
		var d entities.ElectiveDetails
		for field, dst := range map[string]*int{
			fieldMinDaysNotice: &d.MinDaysNotice,
			fieldMinMembers:    &d.MinMembers,
			fieldMinNonMembers: &d.MinNonMembers,
			fieldMinTotal:      &d.MinTotal,
		} {
			n, err := parseOptionalInt(field, values[field])
			if err != nil {
				return err
			}
			*dst = n
		}
		in.Interest = &d
	}
	return nil
}

// parseYesNo accepts the yes/no shown in the modal, in the user's locale or
// in English.
func (h *Handler) parseYesNo(locale, value string) (bool, error) {
	v := strings.ToLower(value)
	switch v {
	case "", "no", "n", strings.ToLower(h.translator.T(locale, "discord.no", nil)):
		return false, nil
	case "yes", "y", strings.ToLower(h.translator.T(locale, "discord.yes", nil)):
		return true, nil
	}
	return false, invalidField(fieldCOApproval, value)
}
