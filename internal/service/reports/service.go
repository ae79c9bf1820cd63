package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/internal/service/reports/models"
)

// Service сервис отчётов для админ-дашборда
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetRevenueReport считает выручку текущего и прошлого календарного месяца
// Учитываются только записи со статусом confirmed; выручка записи равна
// цене её услуги из каталога
func (s *Service) GetRevenueReport(ctx context.Context) (*models.RevenueReportResponse, error) {
	now := s.timeProvider.Now()
	s.logger.Info("GetRevenueReport: building report for %s", now.Format("2006-01"))

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{})
	if err != nil {
		s.logger.Error("GetRevenueReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRevenueReport - repository error: %v", ErrInternal, err)
	}

	curYear, curMonth, _ := now.Date()
	prevYear, prevMonth, _ := time.Date(curYear, curMonth, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0).Date()

	resp := &models.RevenueReportResponse{}
	for _, appt := range appointments {
		if appt.Status != domain.StatusConfirmed {
			continue
		}

		y, m, _ := appt.Date.Date()
		switch {
		case y == curYear && m == curMonth:
			resp.CurrentMonthRevenue += domain.ServicePrice(appt.ServiceID)
			resp.CurrentMonthBookings++
		case y == prevYear && m == prevMonth:
			resp.PreviousMonthRevenue += domain.ServicePrice(appt.ServiceID)
			resp.PreviousMonthBookings++
		}
	}

	resp.Growth = growthPercent(resp.CurrentMonthRevenue, resp.PreviousMonthRevenue)

	s.logger.Info("GetRevenueReport: current=%d, previous=%d, growth=%.1f%%",
		resp.CurrentMonthRevenue, resp.PreviousMonthRevenue, resp.Growth)
	return resp, nil
}

// growthPercent считает процент роста выручки месяц к месяцу
// При нулевой базе: рост 100% если выручка появилась, иначе 0%
func growthPercent(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
