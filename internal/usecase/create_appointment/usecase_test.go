package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/internal/events"
	"github.com/cortefacil/booking-service/pkg/types"
)

type fakeAppointmentRepo struct {
	taken     []types.TimeString
	takenErr  error
	createErr error
	created   []*domain.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	stored := *appt
	stored.ID = "appt-1"
	stored.CreatedAt = time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	r.created = append(r.created, &stored)
	return &stored, nil
}

func (r *fakeAppointmentRepo) GetTakenTimes(_ context.Context, _ time.Time) ([]types.TimeString, error) {
	if r.takenErr != nil {
		return nil, r.takenErr
	}
	return r.taken, nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakePublisher struct {
	published []events.Topic
}

func (p *fakePublisher) Publish(topic events.Topic) {
	p.published = append(p.published, topic)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeAppointmentRepo, tx *fakeTxManager, pub *fakePublisher, now time.Time) *UseCase {
	uc := NewUseCase(repo, tx, pub, domain.DefaultBusinessHours(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "João Silva",
		CustomerPhone: "11999998888",
		ServiceID:     domain.ServiceCombo,
		Date:          time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	tx := &fakeTxManager{}
	pub := &fakePublisher{}
	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, pub, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "(11) 99999-8888", resp.CustomerPhone)
	assert.Equal(t, "Combo (Cabelo + Barba)", resp.ServiceName)
	assert.Equal(t, 60, resp.ServicePrice)

	assert.Equal(t, 1, tx.calls)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.StatusConfirmed, repo.created[0].Status)
	assert.Equal(t, []events.Topic{events.TopicAppointmentsChanged}, pub.published)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	repo := &fakeAppointmentRepo{taken: []types.TimeString{"09:00", "10:00"}}
	tx := &fakeTxManager{}
	pub := &fakePublisher{}
	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, pub, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, resp)

	assert.Empty(t, repo.created)
	assert.Empty(t, pub.published, "failed booking must not publish events")
}

func TestUseCase_Execute_ClosedDay(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	tx := &fakeTxManager{}
	pub := &fakePublisher{}
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, pub, now)

	req := validRequest()
	req.Date = time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC) // воскресенье

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClosedDay)
	assert.Equal(t, 0, tx.calls, "validation must fail before the transaction")
}

func TestUseCase_Execute_InvalidPhone(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	tx := &fakeTxManager{}
	pub := &fakePublisher{}
	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, pub, now)

	req := validRequest()
	req.CustomerPhone = "(11) 9999-888"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Empty(t, pub.published)
}

func TestUseCase_Execute_RepoErrors(t *testing.T) {
	now := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

	t.Run("taken times lookup fails", func(t *testing.T) {
		repo := &fakeAppointmentRepo{takenErr: errors.New("connection refused")}
		pub := &fakePublisher{}
		uc := newTestUseCase(repo, &fakeTxManager{}, pub, now)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, pub.published)
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := &fakeAppointmentRepo{createErr: errors.New("connection refused")}
		pub := &fakePublisher{}
		uc := newTestUseCase(repo, &fakeTxManager{}, pub, now)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, pub.published)
	})
}
