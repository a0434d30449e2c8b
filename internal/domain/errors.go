package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidSide        = errors.New("invalid side")
	ErrInvalidKind        = errors.New("invalid event kind")
	ErrInvalidEvent       = errors.New("invalid event")
	ErrEventNotScheduled  = errors.New("event has no date set")
	ErrVersionConflict    = errors.New("event was modified concurrently")
	ErrInvalidMissionFile = errors.New("invalid mission file")
)

// MessageID maps an error to the i18n key of the message shown to users.
// Unknown errors get the generic message.
func MessageID(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEventNotFound):
		return "error.event_not_found"
	case errors.Is(err, ErrUserNotFound):
		return "error.user_not_linked"
	case errors.Is(err, ErrInvalidSide):
		return "error.invalid_side"
	case errors.Is(err, ErrInvalidEvent), errors.Is(err, ErrInvalidKind), errors.Is(err, ErrInvalidMissionFile):
		return "error.invalid_event"
	case errors.Is(err, ErrVersionConflict):
		return "error.conflict"
	case errors.Is(err, ErrEventNotScheduled):
		return "error.not_scheduled"
	default:
		return "error.generic"
	}
}
