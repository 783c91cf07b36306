package converter

import (
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/model"
)

func ToSpin(req dto.SpinRequest) model.Spin {
	return model.Spin{UserID: req.UserID}
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		WonItem: dto.WonItem{
			Name:  res.Item.Name,
			Value: res.Item.Value,
			Emoji: res.Item.Emoji,
		},
		NewBalance: res.Balance,
		Cost:       res.Cost,
	}
}

func ToDailyBonus(req dto.DailyBonusRequest) model.DailyBonus {
	return model.DailyBonus{UserID: req.UserID}
}

func ToDailyBonusResponse(res model.BonusResult) dto.DailyBonusResponse {
	return dto.DailyBonusResponse{
		Bonus:      res.Amount,
		NewBalance: res.Balance,
	}
}

func ToInventoryResponse(items []model.InventoryItem) []dto.InventoryItem {
	out := make([]dto.InventoryItem, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryItem{
			ID:        it.ID,
			UserID:    it.UserID,
			ItemName:  it.ItemName,
			ItemValue: it.ItemValue,
			CreatedAt: it.CreatedAt,
		})
	}
	return out
}

func ToWithdraw(req dto.WithdrawRequest) model.Withdraw {
	return model.Withdraw{
		UserID:   req.UserID,
		Username: req.Username,
		ItemID:   req.ItemID,
		ItemName: req.ItemName,
	}
}
