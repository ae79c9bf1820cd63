package get_available_slots

import (
	"context"
	"fmt"

	"github.com/cortefacil/booking-service/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	hours           domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 1. Генерируем сетку слотов (выходной/прошедший день дают пустую сетку)
	timeSlots, err := generateTimeSlots(uc.hours, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// Пустая сетка - занятость можно не читать
	if len(timeSlots) == 0 {
		uc.logger.Info("GetAvailableSlots: no bookable slots on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: timeSlots}, nil
	}

	// 2. Получаем занятые времена (отменённые записи слот не держат)
	taken, err := uc.appointmentRepo.GetTakenTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get taken times: %v", err)
		return nil, fmt.Errorf("%w: failed to get taken times: %v", ErrInternal, err)
	}

	// 3. Убираем занятые
	available := filterTakenSlots(timeSlots, taken)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for date=%s",
		len(available), len(timeSlots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: available}, nil
}
