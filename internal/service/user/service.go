package user

import (
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"

	"go.uber.org/zap"
)

// defaultUsername имя, если клиент его не передал
const defaultUsername = "Unknown"

type serv struct {
	userRepo        repository.UserRepository
	statsRepo       repository.StatsRepository
	startingBalance int
	log             *zap.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	startingBalance int,
	log *zap.Logger,
) service.UserService {
	return &serv{
		userRepo:        userRepo,
		statsRepo:       statsRepo,
		startingBalance: startingBalance,
		log:             log.Named("user"),
	}
}
