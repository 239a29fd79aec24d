package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/username/bankrecon/backend/src/services"
)

type ValidationHandler struct {
	validationService services.ValidationService
}

func NewValidationHandler(validationService services.ValidationService) *ValidationHandler {
	return &ValidationHandler{validationService: validationService}
}

// HandleCreateValidation reconciles the period. A failed reconciliation is
// still a 201: the findings are in the body.
func (h *ValidationHandler) HandleCreateValidation(w http.ResponseWriter, r *http.Request) {
	v, err := h.validationService.CreateValidation(r.Context(), chi.URLParam(r, "periodId"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusCreated, v)
}

func (h *ValidationHandler) HandleListValidations(w http.ResponseWriter, r *http.Request) {
	validations, err := h.validationService.ListValidations(r.Context(), chi.URLParam(r, "periodId"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, validations)
}

func (h *ValidationHandler) HandleGetCurrentValidation(w http.ResponseWriter, r *http.Request) {
	v, err := h.validationService.GetCurrentValidation(r.Context(), chi.URLParam(r, "periodId"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, v)
}

func (h *ValidationHandler) HandleGetValidation(w http.ResponseWriter, r *http.Request) {
	v, err := h.validationService.GetValidation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, v)
}

func (h *ValidationHandler) HandleDeleteValidation(w http.ResponseWriter, r *http.Request) {
	if err := h.validationService.DeleteValidation(r.Context(), chi.URLParam(r, "id")); err != nil {
		sendServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
