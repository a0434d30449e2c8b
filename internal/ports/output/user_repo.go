package output

import (
	"context"
	"time"

	"clanops/internal/domain/entities"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_user_repo.go clanops/internal/ports/output UserRepository

// UserRepository looks users up. Lookups that match nobody return
// domain.ErrUserNotFound.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByDiscordID(ctx context.Context, discordID string) (*entities.User, error)
	// FindByArmaNameAt returns the user that held the in-game name at t.
	FindByArmaNameAt(ctx context.Context, name string, at time.Time) (*entities.User, error)
}
