package get_announcement_history

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

// Handle GET /api/v1/admin/announcements/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetHistory(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/announcements/history - Failed to get history: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/announcements/history - History retrieved: count=%d", len(result.Announcements))
	handlers.RespondJSON(w, http.StatusOK, result)
}
