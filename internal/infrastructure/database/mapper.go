package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"clanops/internal/domain/entities"
)

// timestamptz maps a zero time to NULL.
func timestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}

func textToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

type userRow struct {
	ID        string
	SteamID   string
	DiscordID pgtype.Text
	Email     string
	Name      string
	RankID    pgtype.Text
	CreatedAt pgtype.Timestamptz
}

func userToDomain(r userRow, names []entities.ArmaName) *entities.User {
	return &entities.User{
		ID:        r.ID,
		SteamID:   r.SteamID,
		DiscordID: textToString(r.DiscordID),
		Email:     r.Email,
		Name:      r.Name,
		RankID:    textToString(r.RankID),
		ArmaNames: names,
		CreatedAt: pgtypeTimestamptzToTime(r.CreatedAt),
	}
}

// playerRow is the element shape of raw_attendance.players as written by
// the server poller.
type playerRow struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
	Score    int     `json:"score"`
}

func playersToDomain(raw []byte) ([]entities.PlayerPresence, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []playerRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}
	out := make([]entities.PlayerPresence, len(rows))
	for i, p := range rows {
		out[i] = entities.PlayerPresence{Name: p.Name, Duration: p.Duration, Score: p.Score}
	}
	return out, nil
}
