package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository reads the users maintained by the membership system.
type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `u.id, u.steam_id, u.discord_id, u.email, u.name, u.rank_id, u.created_at`

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users u WHERE u.id = $1`, id)
}

func (r *UserRepository) FindByDiscordID(ctx context.Context, discordID string) (*entities.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users u WHERE u.discord_id = $1`, discordID)
}

// FindByArmaNameAt matches the name case-insensitively against the name each
// user held at the given time, so a name later taken by someone else still
// resolves to its holder at that time.
func (r *UserRepository) FindByArmaNameAt(ctx context.Context, name string, at time.Time) (*entities.User, error) {
	return r.findOne(ctx,
		`SELECT `+userColumns+`
		 FROM users u
		 JOIN arma_names n ON n.user_id = u.id
		 WHERE lower(n.name) = lower($1) AND n.created <= $2
		   AND NOT EXISTS (
		       SELECT 1 FROM arma_names later
		       WHERE later.user_id = n.user_id AND later.created > n.created AND later.created <= $2)
		 ORDER BY n.created DESC
		 LIMIT 1`,
		name, at.UTC(),
	)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var row userRow
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&row.ID, &row.SteamID, &row.DiscordID, &row.Email, &row.Name, &row.RankID, &row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	names, err := r.armaNames(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return userToDomain(row, names), nil
}

func (r *UserRepository) armaNames(ctx context.Context, userID string) ([]entities.ArmaName, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, created FROM arma_names WHERE user_id = $1 ORDER BY created`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get arma names: %w", err)
	}
	defer rows.Close()

	var names []entities.ArmaName
	for rows.Next() {
		var n entities.ArmaName
		if err := rows.Scan(&n.Name, &n.Created); err != nil {
			return nil, fmt.Errorf("scan arma name: %w", err)
		}
		n.Created = n.Created.UTC()
		names = append(names, n)
	}
	return names, rows.Err()
}
