package get_announcement

import (
	"net/http"

	"github.com/cortefacil/booking-service/internal/api/handlers"
)

type Handler struct {
	service AnnouncementsService
	logger  Logger
}

func NewHandler(service AnnouncementsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/announcement
// Всегда отвечает 200: при выключенном баннере или сбое хранилища
// возвращается неактивное состояние
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.GetActive(r.Context())

	h.logger.Info("GET /announcement - Banner state retrieved: is_active=%t", result.IsActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}
