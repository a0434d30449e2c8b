package application

import (
	"context"

	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
	"clanops/internal/ports/output"
)

var _ input.UserUseCase = (*UserService)(nil)

type UserService struct {
	userRepo output.UserRepository
}

func NewUserService(userRepo output.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByDiscordID(ctx context.Context, discordID string) (*entities.User, error) {
	return s.userRepo.FindByDiscordID(ctx, discordID)
}
