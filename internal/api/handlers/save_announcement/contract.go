package save_announcement

import (
	"context"

	"github.com/cortefacil/booking-service/internal/service/announcements/models"
)

type AnnouncementsService interface {
	Save(ctx context.Context, req *models.SaveAnnouncementRequest) (*models.AnnouncementResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
