package model

import "time"

type User struct {
	ID             int64
	Username       string
	Balance        int
	LastDailyBonus *time.Time
	CreatedAt      time.Time
}

// UserProfile пользователь вместе с игровой статистикой
type UserProfile struct {
	User  User
	Stats UserStats
}
