package model

import "time"

type UserStats struct {
	SpinsCount int
	TotalWon   int
	LastSpin   *time.Time
}

// HouseStats агрегированная статистика рулетки по всем игрокам
type HouseStats struct {
	TotalSpins   int
	TotalWagered int
	TotalPaid    int
	CurrentRTP   float64
	WindowRTP    float64
	WindowSize   int
}

type AdminStats struct {
	TotalUsers       int
	TotalWithdrawals int
	ServerTime       time.Time
	House            HouseStats
}
