package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/username/bankrecon/backend/src/models"
	"github.com/username/bankrecon/backend/src/services"
)

type CheckpointHandler struct {
	checkpointService services.CheckpointService
}

func NewCheckpointHandler(checkpointService services.CheckpointService) *CheckpointHandler {
	return &CheckpointHandler{checkpointService: checkpointService}
}

type checkpointRequest struct {
	Date    *models.Date     `json:"date"`
	Balance *decimal.Decimal `json:"balance"`
}

func (h *CheckpointHandler) HandleCreateCheckpoint(w http.ResponseWriter, r *http.Request) {
	var req checkpointRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}
	if req.Date == nil || req.Balance == nil {
		sendServiceError(w, r, fmt.Errorf("%w: date and balance are required", services.ErrInvalidInput))
		return
	}

	checkpoint, err := h.checkpointService.CreateCheckpoint(r.Context(), chi.URLParam(r, "periodId"),
		models.CheckpointInput{Date: *req.Date, Balance: *req.Balance})
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusCreated, checkpoint)
}

func (h *CheckpointHandler) HandleUpdateCheckpoint(w http.ResponseWriter, r *http.Request) {
	var patch models.CheckpointPatch
	if err := decodeJSONBody(w, r, &patch); err != nil {
		sendServiceError(w, r, err)
		return
	}

	checkpoint, err := h.checkpointService.UpdateCheckpoint(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, checkpoint)
}

func (h *CheckpointHandler) HandleListCheckpoints(w http.ResponseWriter, r *http.Request) {
	checkpoints, err := h.checkpointService.ListCheckpoints(r.Context(), chi.URLParam(r, "periodId"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, checkpoints)
}

func (h *CheckpointHandler) HandleGetCheckpoint(w http.ResponseWriter, r *http.Request) {
	checkpoint, err := h.checkpointService.GetCheckpoint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, checkpoint)
}

func (h *CheckpointHandler) HandleDeleteCheckpoint(w http.ResponseWriter, r *http.Request) {
	if err := h.checkpointService.DeleteCheckpoint(r.Context(), chi.URLParam(r, "id")); err != nil {
		sendServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
