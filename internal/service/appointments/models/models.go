package models

import (
	"errors"
	"time"

	"github.com/cortefacil/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Date *time.Time `json:"date,omitempty"` // Фильтр по дате (опционально)
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"` // В формате отображения: (XX) XXXXX-XXXX
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`      // "2025-11-04"
	StartTime     string `json:"startTime"` // "10:00"
	Status        string `json:"status"`

	// Денормализованные данные из каталога услуг
	ServiceName  string `json:"serviceName"`
	ServicePrice int    `json:"servicePrice"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:            a.ID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		ServiceID:     string(a.ServiceID),
		Date:          a.Date.Format(domain.DateFormat),
		StartTime:     a.Time.String(),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}

	// Каталог услуг статический, поэтому цена и название подставляются на чтении
	if service, ok := domain.ServiceByID(a.ServiceID); ok {
		resp.ServiceName = service.Name
		resp.ServicePrice = service.Price
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !domain.IsValidAppointmentStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
