package memory_repo

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"slices"
	"time"
)

func (s *Store) Inventory() repository.InventoryRepository { return (*inventoryRepo)(s) }

type inventoryRepo Store

func (r *inventoryRepo) AddItem(_ context.Context, item *model.InventoryItem) (int64, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.data.users[item.UserID]; !ok {
		return 0, repository.ErrUserNotFound
	}
	r.data.nextItemID++
	it := *item
	it.ID = r.data.nextItemID
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now()
	}
	r.data.inventory = append(r.data.inventory, it)
	return it.ID, nil
}

// ListItems новые предметы первыми
func (r *inventoryRepo) ListItems(_ context.Context, userID int64) ([]model.InventoryItem, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	items := make([]model.InventoryItem, 0)
	for i := len(r.data.inventory) - 1; i >= 0; i-- {
		if r.data.inventory[i].UserID == userID {
			items = append(items, r.data.inventory[i])
		}
	}
	return items, nil
}

func (r *inventoryRepo) TakeItem(_ context.Context, userID, itemID int64, name string) (*model.InventoryItem, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	idx := slices.IndexFunc(r.data.inventory, func(it model.InventoryItem) bool {
		if it.UserID != userID {
			return false
		}
		if itemID != 0 {
			return it.ID == itemID
		}
		return it.ItemName == name
	})
	if idx < 0 {
		return nil, repository.ErrItemNotFound
	}

	it := r.data.inventory[idx]
	r.data.inventory = slices.Delete(r.data.inventory, idx, idx+1)
	return &it, nil
}
