package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
)

// responder - общие методы формирования ответов для всех хендлеров
type responder struct {
	logger *slog.Logger
}

func (h responder) extractID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	if raw == "" {
		return 0, errors.New("id is required")
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (h responder) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

func (h responder) handleServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.respondError(w, http.StatusBadRequest, "validation error", verr.Error())
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
	case errors.Is(err, domain.ErrAssetNotFound):
		h.respondError(w, http.StatusNotFound, "asset not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "not found", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
