// Package apierr переводит ошибки сервисов в HTTP ответы {"error": msg}
package apierr

import (
	"context"
	"errors"
	"net/http"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/roulette"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"

	"go.uber.org/zap"
)

const msgInternal = "Internal server error"

// Status HTTP статус и текст для клиента
func Status(err error) (int, string) {
	var cooldown *roulette.BonusCooldownError
	switch {
	case errors.As(err, &cooldown):
		return http.StatusBadRequest, cooldown.Error()
	case errors.Is(err, roulette.ErrInsufficientFunds):
		return http.StatusBadRequest, "Insufficient balance"
	case errors.Is(err, repository.ErrItemNotFound):
		return http.StatusBadRequest, "Item not found in inventory"
	case errors.Is(err, roulette.ErrIndexOutOfRange),
		errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, req.ErrEmptyBody):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, repository.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, repository.ErrWithdrawalNotFound):
		return http.StatusNotFound, "Withdrawal not found"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Request timed out"
	case errors.Is(err, context.Canceled):
		return http.StatusConflict, "Request cancelled"
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// Write пишет ошибку. Внутренние ошибки логируются, клиенту уходит общий текст
func Write(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	status, msg := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error(op, zap.Error(err))
	} else {
		log.Debug(op, zap.Int("status", status), zap.Error(err))
	}
	resp.WriteError(w, status, msg)
}
