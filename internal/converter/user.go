package converter

import (
	dto "roulette_backend/internal/api/dto/user"
	"roulette_backend/internal/model"
)

func ToUser(req dto.RegisterRequest) *model.User {
	return &model.User{
		ID:       req.UserID,
		Username: req.Username,
	}
}

func ToUserResponse(p model.UserProfile) dto.UserResponse {
	return dto.UserResponse{
		UserID:         p.User.ID,
		Username:       p.User.Username,
		Balance:        p.User.Balance,
		LastDailyBonus: p.User.LastDailyBonus,
		CreatedAt:      p.User.CreatedAt,
		Stats:          ToStatsResponse(p.Stats),
	}
}

func ToStatsResponse(s model.UserStats) dto.StatsResponse {
	return dto.StatsResponse{
		SpinsCount: s.SpinsCount,
		TotalWon:   s.TotalWon,
		LastSpin:   s.LastSpin,
	}
}
