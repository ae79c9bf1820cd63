package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortefacil/booking-service/internal/domain"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (r *fakeRepo) List(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.appointments, nil
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

func appt(serviceID domain.ServiceID, date time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        date.Format("20060102") + "-" + string(serviceID),
		ServiceID: serviceID,
		Date:      date,
		Time:      "10:00",
		Status:    status,
	}
}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestService_GetRevenueReport(t *testing.T) {
	now := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	nov := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	oct := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	sep := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)

	t.Run("confirmed appointments summed per month", func(t *testing.T) {
		repo := &fakeRepo{appointments: []*domain.Appointment{
			appt(domain.ServiceCombo, nov, domain.StatusConfirmed), // 60
			appt(domain.ServiceCombo, nov.AddDate(0, 0, 1), domain.StatusConfirmed), // 60
			appt(domain.ServiceBarba, nov, domain.StatusCancelled),                  // отменённая не считается
			appt(domain.ServiceBarba, oct, domain.StatusConfirmed),                  // 30, прошлый месяц
			appt(domain.ServiceCombo, sep, domain.StatusConfirmed),                  // вне окна отчёта
		}}
		svc := newTestService(repo, now)

		resp, err := svc.GetRevenueReport(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 120, resp.CurrentMonthRevenue)
		assert.Equal(t, 2, resp.CurrentMonthBookings)
		assert.Equal(t, 30, resp.PreviousMonthRevenue)
		assert.Equal(t, 1, resp.PreviousMonthBookings)
		assert.InDelta(t, 300.0, resp.Growth, 0.001)
	})

	t.Run("previous month spans a year boundary", func(t *testing.T) {
		january := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
		repo := &fakeRepo{appointments: []*domain.Appointment{
			appt(domain.ServiceBarba, time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC), domain.StatusConfirmed),
		}}
		svc := newTestService(repo, january)

		resp, err := svc.GetRevenueReport(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 30, resp.PreviousMonthRevenue)
	})

	t.Run("repository error wrapped", func(t *testing.T) {
		svc := newTestService(&fakeRepo{err: errors.New("connection refused")}, now)

		_, err := svc.GetRevenueReport(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"from zero base", 80, 0, 100},
		{"both zero", 0, 0, 0},
		{"to zero", 0, 100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, growthPercent(tt.current, tt.previous), 0.001)
		})
	}
}
