package model

type TransactionType string

const (
	TxRouletteSpin TransactionType = "roulette_spin"
	TxItemWon      TransactionType = "item_won"
	TxDailyBonus   TransactionType = "daily_bonus"
	TxWithdrawal   TransactionType = "withdrawal"
	TxAdminAdd     TransactionType = "admin_add"
)

// Transaction строка журнала изменений баланса
type Transaction struct {
	UserID      int64
	Type        TransactionType
	Amount      int
	Description string
}
