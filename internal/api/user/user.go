package user

import (
	"net/http"
	"roulette_backend/internal/api"
	"roulette_backend/internal/api/apierr"
	dto "roulette_backend/internal/api/dto/user"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.UserService
	Log  *zap.Logger
}

type Handler struct {
	serv service.UserService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Register создает пользователя, если его еще нет
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.serv.Register(r.Context(), converter.ToUser(payload)); err != nil {
		apierr.Write(w, h.log, "register", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{Status: "success"})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		apierr.Write(w, h.log, "get user", err)
		return
	}

	profile, err := h.serv.GetUser(r.Context(), id)
	if err != nil {
		apierr.Write(w, h.log, "get user", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(*profile))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		apierr.Write(w, h.log, "user stats", err)
		return
	}

	stats, err := h.serv.GetStats(r.Context(), id)
	if err != nil {
		apierr.Write(w, h.log, "user stats", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(stats))
}
