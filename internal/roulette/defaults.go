package roulette

import "roulette_backend/internal/model"

// DefaultItems стандартная таблица рулетки
func DefaultItems() []model.RewardItem {
	return []model.RewardItem{
		{Name: "Мишка", Value: 15, Weight: 35, Emoji: "🧸"},
		{Name: "Сердечко", Value: 15, Weight: 35, Emoji: "💖"},
		{Name: "Ракета", Value: 50, Weight: 10, Emoji: "🚀"},
		{Name: "Торт", Value: 50, Weight: 10, Emoji: "🎂"},
		{Name: "Кубок", Value: 100, Weight: 5, Emoji: "🏆"},
		{Name: "Кольцо", Value: 100, Weight: 5, Emoji: "💍"},
	}
}

// DefaultBonuses стандартная таблица ежедневного бонуса
func DefaultBonuses() []model.BonusTier {
	return []model.BonusTier{
		{Amount: 5, Weight: 70},
		{Amount: 10, Weight: 15},
		{Amount: 25, Weight: 10},
		{Amount: 50, Weight: 5},
	}
}
