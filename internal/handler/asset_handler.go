package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
	"github.com/asset-tracker/internal/repository"
	"github.com/asset-tracker/internal/service"
)

type AssetHandler struct {
	responder
	assetService service.AssetService
}

func NewAssetHandler(assetService service.AssetService, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		responder:    responder{logger: logger},
		assetService: assetService,
	}
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AssetRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	asset, err := h.assetService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid asset id", err.Error())
		return
	}

	asset, err := h.assetService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid asset id", err.Error())
		return
	}

	var req dto.AssetRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	asset, err := h.assetService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid asset id", err.Error())
		return
	}

	if err := h.assetService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	assets, err := h.assetService.List(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if assets == nil {
		assets = []domain.Asset{}
	}

	h.respondJSON(w, http.StatusOK, assets)
}

// parseListQuery собирает параметры выборки.
// Диапазоны учитываются, только если заданы обе границы.
func parseListQuery(values url.Values) (*dto.ListAssetsQuery, error) {
	query := &dto.ListAssetsQuery{
		SortBy:    values.Get("sort_by"),
		SortOrder: values.Get("sort_order"),
		Filters:   make(map[string]string),
	}

	for _, col := range repository.FilterColumns {
		if v := values.Get(col); v != "" {
			query.Filters[col] = v
		}
	}

	minRaw, maxRaw := values.Get("min_value"), values.Get("max_value")
	if minRaw != "" && maxRaw != "" {
		minValue, err := domain.ParseDecimal("min_value", minRaw)
		if err != nil {
			return nil, err
		}
		maxValue, err := domain.ParseDecimal("max_value", maxRaw)
		if err != nil {
			return nil, err
		}
		query.Value = &dto.ValueRange{Min: minValue, Max: maxValue}
	}

	from, to := values.Get("date_from"), values.Get("date_to")
	if from != "" && to != "" {
		query.Date = &dto.DateRange{Start: from, End: to}
	}

	return query, nil
}
