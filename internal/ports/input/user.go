package input

import (
	"context"

	"clanops/internal/domain/entities"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_user.go clanops/internal/ports/input UserUseCase

type UserUseCase interface {
	GetUserByDiscordID(ctx context.Context, discordID string) (*entities.User, error)
}
