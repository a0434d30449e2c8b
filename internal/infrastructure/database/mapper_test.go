package database

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clanops/internal/domain/entities"
)

func TestTimestamptz(t *testing.T) {
	assert.False(t, timestamptz(time.Time{}).Valid)

	paris := time.FixedZone("CEST", 2*3600)
	ts := timestamptz(time.Date(2025, 6, 1, 20, 0, 0, 0, paris))
	require.True(t, ts.Valid)
	assert.Equal(t, time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), ts.Time)

	assert.True(t, pgtypeTimestamptzToTime(pgtype.Timestamptz{}).IsZero())
	assert.Equal(t, ts.Time, pgtypeTimestamptzToTime(ts))
}

func TestUserToDomainNullColumns(t *testing.T) {
	u := userToDomain(userRow{ID: "u1", SteamID: "7656"}, nil)
	assert.Equal(t, "u1", u.ID)
	assert.Empty(t, u.DiscordID)
	assert.False(t, u.IsMember())

	u = userToDomain(userRow{
		ID:        "u2",
		DiscordID: pgtype.Text{String: "1234", Valid: true},
		RankID:    pgtype.Text{String: "pvt", Valid: true},
	}, []entities.ArmaName{{Name: "Ghost"}})
	assert.Equal(t, "1234", u.DiscordID)
	assert.True(t, u.IsMember())
	assert.Equal(t, "Ghost", u.ArmaName())
}

func TestPlayersToDomain(t *testing.T) {
	players, err := playersToDomain([]byte(`[{"name":"[TAG] Ghost","duration":612.5,"score":3},{"name":"Bob","duration":10}]`))
	require.NoError(t, err)
	assert.Equal(t, []entities.PlayerPresence{
		{Name: "[TAG] Ghost", Duration: 612.5, Score: 3},
		{Name: "Bob", Duration: 10},
	}, players)

	players, err = playersToDomain(nil)
	require.NoError(t, err)
	assert.Empty(t, players)

	_, err = playersToDomain([]byte(`{`))
	assert.Error(t, err)
}
