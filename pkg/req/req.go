package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// maxBodySize запросы API маленькие, больше - ошибка клиента
const maxBodySize = 1 << 20

var ErrEmptyBody = errors.New("no data provided")

// Decode читает JSON тело в T. Неизвестные поля игнорируются
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, ErrEmptyBody
	}

	err := json.NewDecoder(io.LimitReader(body, maxBodySize)).Decode(&payload)
	if errors.Is(err, io.EOF) {
		return payload, ErrEmptyBody
	}
	if err != nil {
		return payload, fmt.Errorf("invalid json: %w", err)
	}
	return payload, nil
}
