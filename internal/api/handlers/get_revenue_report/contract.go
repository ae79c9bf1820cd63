package get_revenue_report

import (
	"context"

	"github.com/cortefacil/booking-service/internal/service/reports/models"
)

type ReportsService interface {
	GetRevenueReport(ctx context.Context) (*models.RevenueReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
