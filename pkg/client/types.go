package client

import "time"

type Item struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"item_name"`
	Value     int       `json:"item_value"`
	CreatedAt time.Time `json:"created_at"`
}

// State кэш состояния сессии, обновляется после каждого изменяющего вызова
type State struct {
	UserID         int64
	Username       string
	Balance        int
	LastDailyBonus *time.Time
	// Items новые первыми, как отдает сервер
	Items []Item
}

type WonItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Emoji string `json:"emoji"`
}

type SpinResult struct {
	Item       WonItem `json:"won_item"`
	NewBalance int     `json:"new_balance"`
	Cost       int     `json:"cost"`
}

type BonusResult struct {
	Amount     int `json:"bonus"`
	NewBalance int `json:"new_balance"`
}

type WithdrawResult struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type registerRequest struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type userRequest struct {
	UserID int64 `json:"user_id"`
}

type withdrawRequest struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	ItemName  string `json:"item_name"`
	ItemValue int    `json:"item_value"`
	ItemID    int64  `json:"item_id"`
}

type userResponse struct {
	UserID         int64      `json:"user_id"`
	Username       string     `json:"username"`
	Balance        int        `json:"balance"`
	LastDailyBonus *time.Time `json:"last_daily_bonus"`
}

type errorResponse struct {
	Error string `json:"error"`
}
