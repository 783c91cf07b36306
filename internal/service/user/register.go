package user

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"

	"go.uber.org/zap"
)

// Register создает пользователя со стартовым балансом. Повторная регистрация ничего не меняет
func (s *serv) Register(ctx context.Context, user *model.User) error {
	if user.ID <= 0 {
		return fmt.Errorf("%w: user_id is required", service.ErrInvalidArgument)
	}
	if user.Username == "" {
		user.Username = defaultUsername
	}
	user.Balance = s.startingBalance

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if created {
		s.log.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))
	}
	return nil
}
