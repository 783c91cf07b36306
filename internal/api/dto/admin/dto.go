package admin

import "time"

type AddStarsRequest struct {
	UserID int64 `json:"user_id"`
	Amount int   `json:"amount"`
}

type AddStarsResponse struct {
	Status     string `json:"status"`
	NewBalance int    `json:"new_balance"`
}

type Withdrawal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ItemName  string    `json:"item_name"`
	ItemValue int       `json:"item_value"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type HouseStats struct {
	TotalSpins   int     `json:"total_spins"`
	TotalWagered int     `json:"total_wagered"`
	TotalPaid    int     `json:"total_paid"`
	CurrentRTP   float64 `json:"current_rtp"`
	WindowRTP    float64 `json:"window_rtp"`
	WindowSize   int     `json:"window_size"`
}

type StatsResponse struct {
	TotalUsers       int        `json:"total_users"`
	TotalWithdrawals int        `json:"total_withdrawals"`
	ServerTime       time.Time  `json:"server_time"`
	House            HouseStats `json:"house"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
