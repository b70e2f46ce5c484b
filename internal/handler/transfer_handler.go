package handler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
	"github.com/asset-tracker/internal/service"
)

const maxImportBytes = 10 << 20

type TransferHandler struct {
	responder
	transferService service.TransferService
	maxBytes        int64
}

func NewTransferHandler(transferService service.TransferService, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		responder:       responder{logger: logger},
		transferService: transferService,
		maxBytes:        maxImportBytes,
	}
}

func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseEntityKind(r.PathValue("kind"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.transferService.Export(r.Context(), kind, &buf); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", string(kind)+".csv"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write export", slog.Any("error", err))
	}
}

func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseEntityKind(r.PathValue("kind"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBytes)
	result, err := h.transferService.Import(r.Context(), kind, body)
	if err != nil {
		h.handleImportError(w, kind, result, err)
		return
	}

	h.logger.Info("csv import finished",
		slog.String("kind", string(kind)),
		slog.Int("inserted", result.Inserted),
		slog.Int("failed", len(result.Failed)),
	)
	h.respondJSON(w, http.StatusOK, result)
}

// handleImportError отвечает на прерванный импорт. Уже вставленные строки
// остаются в хранилище, поэтому клиент получает их счётчики вместе с ошибкой.
func (h *TransferHandler) handleImportError(w http.ResponseWriter, kind domain.EntityKind, result *dto.ImportResult, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		h.respondImport(w, http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error:   "request body too large",
			Message: fmt.Sprintf("CSV body exceeds %d bytes", tooLarge.Limit),
		}, result)
	case result == nil:
		h.handleServiceError(w, err)
	case errors.Is(err, domain.ErrValidation):
		h.respondImport(w, http.StatusBadRequest, dto.ErrorResponse{Error: "validation error", Message: err.Error()}, result)
	default:
		h.logger.Error("csv import aborted",
			slog.String("kind", string(kind)),
			slog.Int("inserted", result.Inserted),
			slog.Any("error", err),
		)
		h.respondImport(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "import aborted"}, result)
	}
}

func (h *TransferHandler) respondImport(w http.ResponseWriter, status int, errResp dto.ErrorResponse, result *dto.ImportResult) {
	resp := dto.ImportErrorResponse{ErrorResponse: errResp}
	if result != nil {
		resp.ImportResult = *result
	}
	h.respondJSON(w, status, resp)
}
