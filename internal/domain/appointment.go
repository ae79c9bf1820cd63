package domain

import (
	"time"

	"github.com/cortefacil/booking-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	// StatusPending зарезервирован под будущий ручной флоу подтверждения;
	// ни один текущий путь создания записи его не выставляет
	StatusPending AppointmentStatus = "pending"
)

// IsValidAppointmentStatus проверяет, что статус входит в допустимый набор
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusPending:
		return true
	default:
		return false
	}
}

// Appointment represents a customer booking in the barbershop schedule
type Appointment struct {
	ID            string
	CustomerName  string
	CustomerPhone string // отформатированный для отображения: (XX) XXXXX-XXXX
	ServiceID     ServiceID
	Date          time.Time // календарная дата без времени
	Time          types.TimeString
	Status        AppointmentStatus
	CreatedAt     time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiesSlot returns true if the appointment blocks its (date, time) slot
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	Date *time.Time // Фильтр по конкретной дате (опционально, nil - все записи)
}
