package notifier

import (
	"encoding/json"
	"roulette_backend/internal/model"
	"time"
)

// withdrawalMessage тело сообщения для обработчика выдачи
type withdrawalMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	ItemName  string    `json:"item_name"`
	ItemValue int       `json:"item_value"`
	CreatedAt time.Time `json:"created_at"`
}

func encodeWithdrawal(w model.Withdrawal) ([]byte, error) {
	return json.Marshal(withdrawalMessage{
		ID:        w.ID,
		UserID:    w.UserID,
		Username:  w.Username,
		ItemName:  w.ItemName,
		ItemValue: w.ItemValue,
		CreatedAt: w.CreatedAt,
	})
}
