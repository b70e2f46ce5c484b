package handler

import (
	"log/slog"
	"net/http"

	"github.com/asset-tracker/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux             *http.ServeMux
	logger          *slog.Logger
	assetHandler    *AssetHandler
	empHandler      *EmployeeHandler
	transferHandler *TransferHandler
}

// NewRouter создаёт новый роутер
func NewRouter(assetHandler *AssetHandler, empHandler *EmployeeHandler, transferHandler *TransferHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		logger:          logger,
		assetHandler:    assetHandler,
		empHandler:      empHandler,
		transferHandler: transferHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("POST /assets", r.assetHandler.Create)
	r.mux.HandleFunc("GET /assets", r.assetHandler.List)
	r.mux.HandleFunc("GET /assets/{id}", r.assetHandler.GetByID)
	r.mux.HandleFunc("PUT /assets/{id}", r.assetHandler.Update)
	r.mux.HandleFunc("DELETE /assets/{id}", r.assetHandler.Delete)

	r.mux.HandleFunc("POST /employees", r.empHandler.Create)
	r.mux.HandleFunc("GET /employees", r.empHandler.List)
	r.mux.HandleFunc("GET /employees/names", r.empHandler.Names)
	r.mux.HandleFunc("GET /employees/{id}", r.empHandler.GetByID)
	r.mux.HandleFunc("PUT /employees/{id}", r.empHandler.Update)
	r.mux.HandleFunc("DELETE /employees/{id}", r.empHandler.Delete)

	r.mux.HandleFunc("GET /export/{kind}", r.transferHandler.Export)
	r.mux.HandleFunc("POST /import/{kind}", r.transferHandler.Import)

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}
