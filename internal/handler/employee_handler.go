package handler

import (
	"log/slog"
	"net/http"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
	"github.com/asset-tracker/internal/service"
)

type EmployeeHandler struct {
	responder
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		responder:  responder{logger: logger},
		empService: empService,
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, emp)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	var req dto.EmployeeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if employees == nil {
		employees = []domain.Employee{}
	}

	h.respondJSON(w, http.StatusOK, employees)
}

// Names отдаёт имена сотрудников для подсказок поля responsible_person
func (h *EmployeeHandler) Names(w http.ResponseWriter, r *http.Request) {
	names, err := h.empService.Names(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	h.respondJSON(w, http.StatusOK, names)
}
