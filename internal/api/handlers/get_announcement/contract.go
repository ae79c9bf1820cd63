package get_announcement

import (
	"context"

	"github.com/cortefacil/booking-service/internal/service/announcements/models"
)

type AnnouncementsService interface {
	GetActive(ctx context.Context) *models.AnnouncementResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
