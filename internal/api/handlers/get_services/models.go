package get_services

import "github.com/cortefacil/booking-service/internal/domain"

// ServiceResponse HTTP модель услуги каталога
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
}

// ServicesListResponse HTTP response model
type ServicesListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует каталог в HTTP response
func FromDomainServices(services []domain.Service) *ServicesListResponse {
	resp := &ServicesListResponse{
		Services: make([]ServiceResponse, len(services)),
	}

	for i, svc := range services {
		resp.Services[i] = ServiceResponse{
			ID:              string(svc.ID),
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
			Description:     svc.Description,
			ImageURL:        svc.ImageURL,
		}
	}

	return resp
}
