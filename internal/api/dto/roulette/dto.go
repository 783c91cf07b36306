package roulette

import "time"

type SpinRequest struct {
	UserID int64 `json:"user_id"`
}

type WonItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Emoji string `json:"emoji"`
}

type SpinResponse struct {
	WonItem    WonItem `json:"won_item"`
	NewBalance int     `json:"new_balance"` // Баланс после спина
	Cost       int     `json:"cost"`
}

type DailyBonusRequest struct {
	UserID int64 `json:"user_id"`
}

type DailyBonusResponse struct {
	Bonus      int `json:"bonus"`
	NewBalance int `json:"new_balance"`
}

type InventoryItem struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ItemName  string    `json:"item_name"`
	ItemValue int       `json:"item_value"`
	CreatedAt time.Time `json:"created_at"`
}

// WithdrawRequest item_id приоритетнее item_name. item_value только для совместимости
type WithdrawRequest struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	ItemName  string `json:"item_name"`
	ItemValue int    `json:"item_value"`
	ItemID    int64  `json:"item_id,omitempty"`
}

type WithdrawResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}
