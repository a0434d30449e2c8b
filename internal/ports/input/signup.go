package input

import (
	"context"

	"clanops/internal/domain/entities"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_signup.go clanops/internal/ports/input SignUpUseCase

type SignUpUseCase interface {
	SignUp(ctx context.Context, locale, eventID, userID string, side entities.Side, maybe bool) (Result, error)
	Cancel(ctx context.Context, locale, eventID, userID string) (Result, error)
}
