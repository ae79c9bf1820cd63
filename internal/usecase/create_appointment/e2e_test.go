package create_appointment_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/internal/events"
	"github.com/cortefacil/booking-service/internal/usecase/create_appointment"
	"github.com/cortefacil/booking-service/internal/usecase/get_available_slots"
	"github.com/cortefacil/booking-service/pkg/types"
)

// memoryRepo хранит записи в памяти и реализует репозиторий для обоих use case
type memoryRepo struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	nextID       int
}

func (r *memoryRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *appt
	stored.ID = stored.Date.Format("20060102") + "-" + string(rune('a'+r.nextID))
	stored.CreatedAt = time.Now()
	r.appointments = append(r.appointments, &stored)
	return &stored, nil
}

func (r *memoryRepo) GetTakenTimes(_ context.Context, date time.Time) ([]types.TimeString, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var taken []types.TimeString
	for _, appt := range r.appointments {
		if appt.Date.Equal(date) && appt.OccupiesSlot() {
			taken = append(taken, appt.Time)
		}
	}
	return taken, nil
}

func (r *memoryRepo) setStatus(id string, status domain.AppointmentStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, appt := range r.appointments {
		if appt.ID == id {
			appt.Status = status
		}
	}
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type silentLogger struct{}

func (silentLogger) Info(string, ...interface{})  {}
func (silentLogger) Warn(string, ...interface{})  {}
func (silentLogger) Error(string, ...interface{}) {}

// nextBookableDate возвращает ближайший будущий рабочий день (не воскресенье),
// минимум через два дня, чтобы исключить фильтрацию по текущему часу
func nextBookableDate() time.Time {
	date := time.Now().AddDate(0, 0, 2)
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	for date.Weekday() == domain.RestDay {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func TestBookingAffectsAvailability(t *testing.T) {
	repo := &memoryRepo{}
	bus := events.NewBus()
	hours := domain.DefaultBusinessHours()

	createUC := create_appointment.NewUseCase(repo, passthroughTxManager{}, bus, hours, silentLogger{})
	slotsUC := get_available_slots.NewUseCase(repo, hours, silentLogger{})

	ctx := context.Background()
	date := nextBookableDate()

	// Изначально слот 10:00 доступен
	before, err := slotsUC.Execute(ctx, &get_available_slots.Request{Date: date})
	require.NoError(t, err)
	assert.Contains(t, before.Slots, types.TimeString("10:00"))

	// Бронируем 10:00
	created, err := createUC.Execute(ctx, &create_appointment.Request{
		CustomerName:  "Pedro Santos",
		CustomerPhone: "(11) 98888-7777",
		ServiceID:     domain.ServiceBarba,
		Date:          date,
		StartTime:     "10:00",
	})
	require.NoError(t, err)

	// Слот 10:00 пропал из выдачи, остальные на месте
	after, err := slotsUC.Execute(ctx, &get_available_slots.Request{Date: date})
	require.NoError(t, err)
	assert.NotContains(t, after.Slots, types.TimeString("10:00"))
	assert.Len(t, after.Slots, len(before.Slots)-1)

	// Повторное бронирование того же слота отклоняется
	_, err = createUC.Execute(ctx, &create_appointment.Request{
		CustomerName:  "Lucas Oliveira",
		CustomerPhone: "(21) 97777-6666",
		ServiceID:     domain.ServiceSocial,
		Date:          date,
		StartTime:     "10:00",
	})
	assert.ErrorIs(t, err, create_appointment.ErrSlotNotAvailable)

	// После отмены слот возвращается
	repo.setStatus(created.ID, domain.StatusCancelled)

	reopened, err := slotsUC.Execute(ctx, &get_available_slots.Request{Date: date})
	require.NoError(t, err)
	assert.Contains(t, reopened.Slots, types.TimeString("10:00"))
	assert.Len(t, reopened.Slots, len(before.Slots))
}
