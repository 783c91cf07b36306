package user

import "time"

type RegisterRequest struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type StatsResponse struct {
	SpinsCount int        `json:"spins_count"`
	TotalWon   int        `json:"total_won"`
	LastSpin   *time.Time `json:"last_spin"`
}

type UserResponse struct {
	UserID         int64         `json:"user_id"`
	Username       string        `json:"username"`
	Balance        int           `json:"balance"`
	LastDailyBonus *time.Time    `json:"last_daily_bonus"`
	CreatedAt      time.Time     `json:"created_at"`
	Stats          StatsResponse `json:"stats"`
}
