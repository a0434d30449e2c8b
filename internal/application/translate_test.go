package application

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"clanops/internal/domain/entities"
)

type echoTranslator struct{}

func (echoTranslator) T(locale, key string, data map[string]any) string {
	if data == nil {
		return locale + ":" + key
	}
	return fmt.Sprintf("%s:%s %v", locale, key, data)
}

func TestResultTranslatesNestedMessageIDs(t *testing.T) {
	o := entities.Outcome{
		OK:      true,
		Message: entities.MsgSignUpSuccess,
		Data:    map[string]any{"Side": entities.SideWest, "Commitment": entities.Commitment(true)},
	}

	res := result(echoTranslator{}, "en", o)
	assert.True(t, res.Success)
	assert.Equal(t, "en:signup.success map[Commitment:en:commitment.maybe Side:en:side.west]", res.Message)
}

func TestResultWithoutData(t *testing.T) {
	res := result(echoTranslator{}, "fr", entities.Outcome{Message: entities.MsgNoRoom})
	assert.False(t, res.Success)
	assert.Equal(t, "fr:signup.no_room", res.Message)
}
