package appointments

import (
	"context"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/internal/events"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// EventPublisher интерфейс публикации событий изменения данных
type EventPublisher interface {
	Publish(topic events.Topic)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
