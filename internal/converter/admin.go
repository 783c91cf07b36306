package converter

import (
	dto "roulette_backend/internal/api/dto/admin"
	"roulette_backend/internal/model"
)

func ToWithdrawalsResponse(list []model.Withdrawal) []dto.Withdrawal {
	out := make([]dto.Withdrawal, 0, len(list))
	for _, w := range list {
		out = append(out, dto.Withdrawal{
			ID:        w.ID,
			UserID:    w.UserID,
			Username:  w.Username,
			ItemName:  w.ItemName,
			ItemValue: w.ItemValue,
			Status:    string(w.Status),
			CreatedAt: w.CreatedAt,
		})
	}
	return out
}

func ToAdminStatsResponse(s model.AdminStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalUsers:       s.TotalUsers,
		TotalWithdrawals: s.TotalWithdrawals,
		ServerTime:       s.ServerTime,
		House: dto.HouseStats{
			TotalSpins:   s.House.TotalSpins,
			TotalWagered: s.House.TotalWagered,
			TotalPaid:    s.House.TotalPaid,
			CurrentRTP:   s.House.CurrentRTP,
			WindowRTP:    s.House.WindowRTP,
			WindowSize:   s.House.WindowSize,
		},
	}
}
