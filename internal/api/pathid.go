package api

import (
	"fmt"
	"net/http"
	"roulette_backend/internal/service"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// PathID положительный int64 из параметра маршрута
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", service.ErrInvalidArgument, name)
	}
	return id, nil
}
