package application

import (
	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
	"clanops/internal/ports/output"
)

type messageID interface {
	MessageID() string
}

// translate renders key, translating template values that are themselves
// message IDs (sides, commitments).
func translate(t output.T, locale, key string, data map[string]any) string {
	if len(data) == 0 {
		return t.T(locale, key, nil)
	}
	rendered := make(map[string]any, len(data))
	for k, v := range data {
		if m, ok := v.(messageID); ok {
			rendered[k] = t.T(locale, m.MessageID(), nil)
			continue
		}
		rendered[k] = v
	}
	return t.T(locale, key, rendered)
}

func result(t output.T, locale string, o entities.Outcome) input.Result {
	return input.Result{Success: o.OK, Message: translate(t, locale, o.Message, o.Data)}
}
