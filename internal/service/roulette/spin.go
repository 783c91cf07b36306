package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"

	"go.uber.org/zap"
)

// Spin списывает цену спина, разыгрывает предмет и кладет его в инвентарь
func (s *serv) Spin(ctx context.Context, req model.Spin) (*model.SpinResult, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user_id is required", service.ErrInvalidArgument)
	}

	var res model.SpinResult
	err := s.withUserLock(ctx, req.UserID, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(txCtx context.Context) error {
			user, err := s.userRepo.GetUserForUpdate(txCtx, req.UserID)
			if err != nil {
				return err
			}

			// Розыгрыш без побочных эффектов, дальше только сохраняем
			res, err = s.engine.Spin(user.Balance)
			if err != nil {
				return err
			}

			balance, err := s.userRepo.AddBalance(txCtx, user.ID, res.Balance-user.Balance)
			if err != nil {
				return fmt.Errorf("update balance: %w", err)
			}
			res.Balance = balance

			_, err = s.inventoryRepo.AddItem(txCtx, &model.InventoryItem{
				UserID:    user.ID,
				ItemName:  res.Item.Name,
				ItemValue: res.Item.Value,
			})
			if err != nil {
				return fmt.Errorf("add item: %w", err)
			}

			err = s.ledgerRepo.AddTransaction(txCtx, model.Transaction{
				UserID:      user.ID,
				Type:        model.TxRouletteSpin,
				Amount:      -res.Cost,
				Description: "Прокрутка рулетки",
			})
			if err != nil {
				return fmt.Errorf("add spin transaction: %w", err)
			}

			if credited := s.credited(res); credited > 0 {
				err = s.ledgerRepo.AddTransaction(txCtx, model.Transaction{
					UserID:      user.ID,
					Type:        model.TxItemWon,
					Amount:      credited,
					Description: "Выигрыш: " + res.Item.Name,
				})
				if err != nil {
					return fmt.Errorf("add win transaction: %w", err)
				}
			}

			if err := s.statsRepo.RecordSpin(txCtx, user.ID, res.Item.Value, s.engine.Now()); err != nil {
				return fmt.Errorf("record spin: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		metrics.ObserveRejected(rejectReason(err))
		return nil, err
	}

	// Статистика рулетки после коммита
	credited := s.credited(res)
	s.houseStatsRepo.UpdateState(res.Cost, credited)
	metrics.ObserveSpin(res.Item.Name, res.Cost, credited)

	s.log.Info("spin",
		zap.Int64("user_id", req.UserID),
		zap.String("item", res.Item.Name),
		zap.Int("value", res.Item.Value),
		zap.Int("balance", res.Balance),
	)

	return &res, nil
}

// credited сколько звёзд начислено за выпавший предмет
func (s *serv) credited(res model.SpinResult) int {
	if s.engine.Rules().CreditWins {
		return res.Item.Value
	}
	return 0
}
