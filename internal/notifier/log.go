package notifier

import (
	"context"
	"roulette_backend/internal/model"

	"go.uber.org/zap"
)

// Log пишет заявку в лог, когда брокер не настроен
type Log struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *Log {
	return &Log{log: log}
}

func (n *Log) NotifyWithdrawal(_ context.Context, w model.Withdrawal) error {
	n.log.Info("withdrawal awaiting fulfillment",
		zap.Int64("withdrawal_id", w.ID),
		zap.Int64("user_id", w.UserID),
		zap.String("username", w.Username),
		zap.String("item", w.ItemName),
		zap.Int("value", w.ItemValue),
	)
	return nil
}
