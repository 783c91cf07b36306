package client

import (
	"errors"
	"fmt"
)

var (
	// ErrActionInFlight другое изменяющее действие этого клиента еще не завершилось
	ErrActionInFlight    = errors.New("another action is in flight")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrIndexOutOfRange   = errors.New("item index out of range")
)

// serverInsufficientFunds текст ошибки сервера при нехватке баланса
const serverInsufficientFunds = "Insufficient balance"

// RemoteCallError запрос не дошел, сервер ответил не 2xx без тела ошибки
// или ответ не удалось разобрать
type RemoteCallError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: http status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// ServerRejectedError сервер вернул {"error": msg}
type ServerRejectedError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ServerRejectedError) Error() string {
	return fmt.Sprintf("%s rejected: %d %s", e.Op, e.StatusCode, e.Message)
}

// Is отказ сервера по балансу совпадает с ErrInsufficientFunds
func (e *ServerRejectedError) Is(target error) bool {
	return target == ErrInsufficientFunds && e.Message == serverInsufficientFunds
}
