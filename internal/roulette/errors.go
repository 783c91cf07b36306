package roulette

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrIndexOutOfRange   = errors.New("item index out of range")
	ErrBonusNotReady     = errors.New("bonus already claimed")

	ErrEmptyTable    = errors.New("weighted table is empty")
	ErrInvalidWeight = errors.New("weight must be positive")
	ErrWeightSum     = errors.New("weights must sum to 100")
	ErrDrawMissed    = errors.New("draw did not land on any entry")
)

// BonusCooldownError бонус уже получен, Remaining - сколько осталось ждать
type BonusCooldownError struct {
	Remaining time.Duration
}

func (e *BonusCooldownError) Error() string {
	hours := int(e.Remaining / time.Hour)
	minutes := int(e.Remaining % time.Hour / time.Minute)
	return fmt.Sprintf("%s. Next available in %dh %dm", ErrBonusNotReady, hours, minutes)
}

func (e *BonusCooldownError) Is(target error) bool {
	return target == ErrBonusNotReady
}
