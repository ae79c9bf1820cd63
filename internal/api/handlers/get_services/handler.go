package get_services

import (
	"net/http"

	"github.com/cortefacil/booking-service/internal/api/handlers"
	"github.com/cortefacil/booking-service/internal/domain"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/services
// Каталог статический, ходить в хранилище не нужно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromDomainServices(domain.Services)

	h.logger.Info("GET /services - Catalog retrieved: services_count=%d", len(response.Services))
	handlers.RespondJSON(w, http.StatusOK, response)
}
