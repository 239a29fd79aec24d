package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/services"
)

type PeriodHandler struct {
	periodService services.PeriodService
}

func NewPeriodHandler(periodService services.PeriodService) *PeriodHandler {
	return &PeriodHandler{periodService: periodService}
}

func (h *PeriodHandler) HandleCreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req services.PeriodInput
	if err := decodeJSONBody(w, r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	period, err := h.periodService.CreatePeriod(r.Context(), req)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusCreated, period)
}

func (h *PeriodHandler) HandleListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.periodService.ListPeriods(r.Context())
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, periods)
}

func (h *PeriodHandler) HandleGetPeriod(w http.ResponseWriter, r *http.Request) {
	period, err := h.periodService.GetPeriod(r.Context(), chi.URLParam(r, "periodId"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, period)
}

func (h *PeriodHandler) HandleUpdatePeriod(w http.ResponseWriter, r *http.Request) {
	var req services.PeriodInput
	if err := decodeJSONBody(w, r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}

	period, err := h.periodService.UpdatePeriod(r.Context(), chi.URLParam(r, "periodId"), req)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, period)
}

func (h *PeriodHandler) HandleDeletePeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "periodId")
	if err := h.periodService.DeletePeriod(r.Context(), id); err != nil {
		sendServiceError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Debug("Period removed via API", "periodID", id)
	w.WriteHeader(http.StatusNoContent)
}
