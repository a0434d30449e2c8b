package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Cleanup(func() { Display = time.UTC })

	require.NoError(t, Load(""))
	assert.Equal(t, time.UTC, Display)

	require.Error(t, Load("Mars/Olympus_Mons"))
	assert.Equal(t, time.UTC, Display)

	require.NoError(t, Load("UTC"))
	assert.Equal(t, "UTC", Display.String())
}
