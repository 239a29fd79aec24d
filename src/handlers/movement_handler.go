package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/models"
	"github.com/username/bankrecon/backend/src/security/validation"
	"github.com/username/bankrecon/backend/src/services"
)

type MovementHandler struct {
	movementService    services.MovementService
	maxUploadSizeBytes int64
}

func NewMovementHandler(movementService services.MovementService, maxUploadSizeBytes int64) *MovementHandler {
	return &MovementHandler{movementService: movementService, maxUploadSizeBytes: maxUploadSizeBytes}
}

// movementRequest uses pointers so that a missing field is told apart from
// a zero value.
type movementRequest struct {
	Date    *models.Date     `json:"date"`
	Wording string           `json:"wording"`
	Amount  *decimal.Decimal `json:"amount"`
}

func (req movementRequest) toInput() (models.MovementInput, error) {
	if req.Date == nil {
		return models.MovementInput{}, fmt.Errorf("%w: date is required", services.ErrInvalidInput)
	}
	if req.Amount == nil {
		return models.MovementInput{}, fmt.Errorf("%w: amount is required", services.ErrInvalidInput)
	}
	return models.MovementInput{Date: *req.Date, Wording: req.Wording, Amount: *req.Amount}, nil
}

func (h *MovementHandler) HandleCreateMovement(w http.ResponseWriter, r *http.Request) {
	var req movementRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		sendServiceError(w, r, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	movement, err := h.movementService.CreateMovement(r.Context(), chi.URLParam(r, "periodId"), in)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusCreated, movement)
}

// HandleImportMovements accepts a multipart upload with the statement in the
// "file" field.
func (h *MovementHandler) HandleImportMovements(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())
	periodID := chi.URLParam(r, "periodId")

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSizeBytes+(1<<20))
	if err := r.ParseMultipartForm(h.maxUploadSizeBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendJSONError(w, fmt.Sprintf("File too large (max %d bytes)", h.maxUploadSizeBytes), http.StatusRequestEntityTooLarge)
			return
		}
		ctxLogger.Warn("Failed to parse multipart form", "periodID", periodID, "error", err)
		sendJSONError(w, "Failed to parse upload, expected multipart/form-data", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		ctxLogger.Warn("Failed to retrieve file from request", "periodID", periodID, "error", err)
		sendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if err := validation.ValidateFileSize(fileHeader.Size, h.maxUploadSizeBytes); err != nil {
		sendServiceError(w, r, err)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		sendServiceError(w, r, err)
		return
	}

	detectedContentType, err := validation.ValidateFileContentByMagicBytes(file)
	if err != nil {
		ctxLogger.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
		sendServiceError(w, r, err)
		return
	}
	ctxLogger.Info("Processing bank statement upload", "periodID", periodID, "filename", fileHeader.Filename,
		"size", fileHeader.Size, "clientType", clientContentType, "detectedType", detectedContentType)

	movements, err := h.movementService.ImportMovements(r.Context(), periodID, file)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusCreated, movements)
}

func (h *MovementHandler) HandleListMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := h.movementService.ListMovements(r.Context(), chi.URLParam(r, "periodId"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, movements)
}

func (h *MovementHandler) HandleGetMovement(w http.ResponseWriter, r *http.Request) {
	movement, err := h.movementService.GetMovement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, movement)
}

func (h *MovementHandler) HandleDeleteMovement(w http.ResponseWriter, r *http.Request) {
	if err := h.movementService.DeleteMovement(r.Context(), chi.URLParam(r, "id")); err != nil {
		sendServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
