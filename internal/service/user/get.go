package user

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
)

func (s *serv) GetUser(ctx context.Context, id int64) (*model.UserProfile, error) {
	user, err := s.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.GetStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	return &model.UserProfile{User: *user, Stats: stats}, nil
}

func (s *serv) GetStats(ctx context.Context, id int64) (model.UserStats, error) {
	return s.statsRepo.GetStats(ctx, id)
}
