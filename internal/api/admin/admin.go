package admin

import (
	"net/http"
	"roulette_backend/internal/api"
	"roulette_backend/internal/api/apierr"
	dto "roulette_backend/internal/api/dto/admin"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.AdminService
	Log  *zap.Logger
}

type Handler struct {
	serv service.AdminService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	list, err := h.serv.PendingWithdrawals(r.Context())
	if err != nil {
		apierr.Write(w, h.log, "list withdrawals", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawalsResponse(list))
}

func (h *Handler) AddStars(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AddStarsRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.serv.AddStars(r.Context(), payload.UserID, payload.Amount)
	if err != nil {
		apierr.Write(w, h.log, "add stars", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.AddStarsResponse{Status: "success", NewBalance: balance})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.Stats(r.Context())
	if err != nil {
		apierr.Write(w, h.log, "admin stats", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAdminStatsResponse(*stats))
}

func (h *Handler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		apierr.Write(w, h.log, "complete withdrawal", err)
		return
	}

	if err := h.serv.CompleteWithdrawal(r.Context(), id); err != nil {
		apierr.Write(w, h.log, "complete withdrawal", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{Status: "success"})
}
