package model

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
)

// WithdrawalRequest заявка на ручную выдачу предмета
type WithdrawalRequest struct {
	ItemName    string
	ItemValue   int
	RequestedBy string
}

// Withdraw входные данные на вывод. Если ItemID == 0, предмет ищется по имени
type Withdraw struct {
	UserID   int64
	Username string
	ItemID   int64
	ItemName string
}

type Withdrawal struct {
	ID        int64
	UserID    int64
	Username  string
	ItemName  string
	ItemValue int
	Status    WithdrawalStatus
	CreatedAt time.Time
}
