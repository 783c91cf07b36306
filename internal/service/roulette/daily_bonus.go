package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"

	"go.uber.org/zap"
)

// ClaimDailyBonus начисляет ежедневный бонус, если кулдаун прошел
func (s *serv) ClaimDailyBonus(ctx context.Context, req model.DailyBonus) (*model.BonusResult, error) {
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user_id is required", service.ErrInvalidArgument)
	}

	var res model.BonusResult
	err := s.withUserLock(ctx, req.UserID, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(txCtx context.Context) error {
			user, err := s.userRepo.GetUserForUpdate(txCtx, req.UserID)
			if err != nil {
				return err
			}

			bonus, claimedAt, err := s.engine.ClaimBonus(user.Balance, user.LastDailyBonus)
			if err != nil {
				return err
			}

			balance, err := s.userRepo.AddBalance(txCtx, user.ID, bonus.Amount)
			if err != nil {
				return fmt.Errorf("update balance: %w", err)
			}
			if err := s.userRepo.SetLastDailyBonus(txCtx, user.ID, claimedAt); err != nil {
				return fmt.Errorf("set last daily bonus: %w", err)
			}

			err = s.ledgerRepo.AddTransaction(txCtx, model.Transaction{
				UserID:      user.ID,
				Type:        model.TxDailyBonus,
				Amount:      bonus.Amount,
				Description: "Ежедневный бонус",
			})
			if err != nil {
				return fmt.Errorf("add bonus transaction: %w", err)
			}

			res = model.BonusResult{Amount: bonus.Amount, Balance: balance}
			return nil
		})
	})
	if err != nil {
		metrics.ObserveRejected(rejectReason(err))
		return nil, err
	}

	metrics.ObserveBonus(res.Amount)
	s.log.Info("daily bonus",
		zap.Int64("user_id", req.UserID),
		zap.Int("amount", res.Amount),
		zap.Int("balance", res.Balance),
	)

	return &res, nil
}
