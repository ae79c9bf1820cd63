package save_announcement

import (
	"errors"
	"net/http"

	"github.com/cortefacil/booking-service/internal/api/handlers"
	announcementsService "github.com/cortefacil/booking-service/internal/service/announcements"
	"github.com/cortefacil/booking-service/internal/service/announcements/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidType        = "tipo de aviso inválido, esperado info, alert ou success"
	msgEmptyMessage       = "mensagem do aviso é obrigatória"
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

// Handle PUT /api/v1/admin/announcement
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAnnouncementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/announcement - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, announcementsService.ErrInvalidType):
			h.logger.Warn("PUT /admin/announcement - Invalid type: type=%s", req.Type)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, announcementsService.ErrEmptyMessage):
			h.logger.Warn("PUT /admin/announcement - Empty message for active banner")
			handlers.RespondBadRequest(w, msgEmptyMessage)

		default:
			h.logger.Error("PUT /admin/announcement - Failed to save announcement: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/announcement - Announcement saved: is_active=%t", result.IsActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}
