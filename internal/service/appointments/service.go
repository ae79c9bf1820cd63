package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/internal/events"
	appointmentRepo "github.com/cortefacil/booking-service/internal/infra/storage/appointment"
	"github.com/cortefacil/booking-service/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов (админ-операции)
type Service struct {
	appointmentRepo AppointmentRepository
	publisher       EventPublisher
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		publisher:       publisher,
		logger:          logger,
	}
}

// List получает записи, отсортированные по дате (новые первыми) и времени
// Опционально фильтрует по конкретной дате
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req.Date != nil {
		s.logger.Info("List: fetching appointments for date=%s", req.Date.Format(domain.DateFormat))
	} else {
		s.logger.Info("List: fetching all appointments")
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{Date: req.Date})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// UpdateStatus обновляет статус записи
// После успешного обновления публикует событие: отмена записи освобождает слот,
// и открытые клиентские страницы должны перечитать доступность
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	if id == "" {
		s.logger.Warn("UpdateStatus: empty appointment id")
		return fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, newStatus)
	s.publisher.Publish(events.TopicAppointmentsChanged)
	return nil
}
