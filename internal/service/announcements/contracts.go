package announcements

import (
	"context"
	"time"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/internal/events"
)

// AnnouncementRepository интерфейс репозитория объявлений
type AnnouncementRepository interface {
	GetActive(ctx context.Context) (*domain.AnnouncementRecord, error)
	GetHistory(ctx context.Context, activeAfter time.Time) ([]*domain.AnnouncementRecord, error)
	DeactivateAll(ctx context.Context) error
	Create(ctx context.Context, rec *domain.AnnouncementRecord) (*domain.AnnouncementRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий изменения данных
type EventPublisher interface {
	Publish(topic events.Topic)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
