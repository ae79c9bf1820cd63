package create_appointment

import (
	"context"
	"fmt"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/internal/events"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	publisher       EventPublisher
	hours           domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	hours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		publisher:       publisher,
		hours:           hours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка занятости слота и вставка идут в одной SERIALIZABLE транзакции:
// два клиента, выбравшие один слот, не смогут записаться оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Телефон: нормализация (максимум 11 цифр), валидация, маска отображения
	phoneDigits := normalizePhone(req.CustomerPhone)
	if err := validatePhone(phoneDigits); err != nil {
		uc.logger.Warn("CreateAppointment: phone validation failed: %v", err)
		return nil, err
	}
	formattedPhone := formatPhone(phoneDigits)

	// 3. Валидация слота относительно рабочих часов и текущего момента
	now := uc.timeProvider.Now()
	if err := validateSlotTime(uc.hours, req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
		return nil, err
	}

	service, _ := domain.ServiceByID(req.ServiceID)

	var result *domain.Appointment

	// 4. Check-and-insert в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Занятые времена на дату с блокировкой строк (FOR UPDATE)
		taken, err := uc.appointmentRepo.GetTakenTimes(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get taken times: %v", err)
			return fmt.Errorf("%w: failed to get taken times: %v", ErrInternal, err)
		}

		// 4.2. Слот должен быть свободен
		for _, t := range taken {
			if t == req.StartTime {
				uc.logger.Warn("CreateAppointment: slot %s on %s already taken",
					req.StartTime, req.Date.Format(domain.DateFormat))
				return ErrSlotNotAvailable
			}
		}

		// 4.3. Создаем запись; статус всегда confirmed
		appt := &domain.Appointment{
			CustomerName:  req.CustomerName,
			CustomerPhone: formattedPhone,
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			Time:          req.StartTime,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// 5. Уведомляем подписчиков (только после успешной фиксации)
	uc.publisher.Publish(events.TopicAppointmentsChanged)

	return &Response{
		ID:            result.ID,
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		ServiceID:     result.ServiceID,
		ServiceName:   service.Name,
		ServicePrice:  service.Price,
		Date:          result.Date,
		StartTime:     result.Time,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}
