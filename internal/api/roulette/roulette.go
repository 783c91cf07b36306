package roulette

import (
	"net/http"
	"roulette_backend/internal/api"
	"roulette_backend/internal/api/apierr"
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.RouletteService
	Log  *zap.Logger
}

type Handler struct {
	serv service.RouletteService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpin(payload))
	if err != nil {
		apierr.Write(w, h.log, "spin", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) DailyBonus(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DailyBonusRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.ClaimDailyBonus(r.Context(), converter.ToDailyBonus(payload))
	if err != nil {
		apierr.Write(w, h.log, "daily bonus", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDailyBonusResponse(*result))
}

func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		apierr.Write(w, h.log, "inventory", err)
		return
	}

	items, err := h.serv.Inventory(r.Context(), id)
	if err != nil {
		apierr.Write(w, h.log, "inventory", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToInventoryResponse(items))
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	withdrawal, err := h.serv.Withdraw(r.Context(), converter.ToWithdraw(payload))
	if err != nil {
		apierr.Write(w, h.log, "withdraw", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.WithdrawResponse{
		Status: "withdrawal_created",
		ID:     withdrawal.ID,
	})
}
