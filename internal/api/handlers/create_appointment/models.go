package create_appointment

import (
	"time"

	"github.com/cortefacil/booking-service/internal/domain"
	createAppointment "github.com/cortefacil/booking-service/internal/usecase/create_appointment"
	"github.com/cortefacil/booking-service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`      // "2025-11-04"
	StartTime     string `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	ServiceID     string `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	ServicePrice  int    `json:"servicePrice"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		ServiceID:     domain.ServiceID(r.ServiceID),
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		ServiceID:     string(resp.ServiceID),
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
