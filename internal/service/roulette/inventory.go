package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"
)

// Inventory предметы пользователя, новые первыми
func (s *serv) Inventory(ctx context.Context, userID int64) ([]model.InventoryItem, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user_id is required", service.ErrInvalidArgument)
	}
	return s.inventoryRepo.ListItems(ctx, userID)
}
