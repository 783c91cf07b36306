package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"
	"time"

	"go.uber.org/zap"
)

const notifyTimeout = 3 * time.Second

// Withdraw снимает предмет из инвентаря и создает заявку на ручную выдачу.
// Баланс не меняется
func (s *serv) Withdraw(ctx context.Context, req model.Withdraw) (*model.Withdrawal, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user_id is required", service.ErrInvalidArgument)
	}
	if req.ItemID <= 0 && req.ItemName == "" {
		return nil, fmt.Errorf("%w: item_id or item_name is required", service.ErrInvalidArgument)
	}

	var w model.Withdrawal
	err := s.withUserLock(ctx, req.UserID, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(txCtx context.Context) error {
			user, err := s.userRepo.GetUser(txCtx, req.UserID)
			if err != nil {
				return err
			}

			item, err := s.inventoryRepo.TakeItem(txCtx, user.ID, req.ItemID, req.ItemName)
			if err != nil {
				return err
			}

			username := req.Username
			if username == "" {
				username = user.Username
			}

			w = model.Withdrawal{
				UserID:    user.ID,
				Username:  username,
				ItemName:  item.ItemName,
				ItemValue: item.ItemValue,
			}
			if _, err := s.withdrawalRepo.CreateWithdrawal(txCtx, &w); err != nil {
				return fmt.Errorf("create withdrawal: %w", err)
			}

			// Сумма в журнале информационная, баланс не меняется
			err = s.ledgerRepo.AddTransaction(txCtx, model.Transaction{
				UserID:      user.ID,
				Type:        model.TxWithdrawal,
				Amount:      -item.ItemValue,
				Description: "Вывод: " + item.ItemName,
			})
			if err != nil {
				return fmt.Errorf("add withdrawal transaction: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		metrics.ObserveRejected(rejectReason(err))
		return nil, err
	}

	metrics.ObserveWithdrawal()
	s.log.Info("withdrawal created",
		zap.Int64("withdrawal_id", w.ID),
		zap.Int64("user_id", w.UserID),
		zap.String("item", w.ItemName),
	)

	// Заявка уже сохранена, ошибка доставки только логируется
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyWithdrawal(notifyCtx, w); err != nil {
		s.log.Warn("notify withdrawal", zap.Int64("withdrawal_id", w.ID), zap.Error(err))
	}

	return &w, nil
}
