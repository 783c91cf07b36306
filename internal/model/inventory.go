package model

import "time"

// InventoryItem единственная форма записи инвентаря, позиционных строк нет
type InventoryItem struct {
	ID        int64
	UserID    int64
	ItemName  string
	ItemValue int
	CreatedAt time.Time
}
