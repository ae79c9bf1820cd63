package get_announcement_history

import (
	"context"

	"github.com/cortefacil/booking-service/internal/service/announcements/models"
)

type AnnouncementsService interface {
	GetHistory(ctx context.Context) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
