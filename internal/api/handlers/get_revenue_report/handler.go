package get_revenue_report

import (
	"net/http"

	"github.com/cortefacil/booking-service/internal/api/handlers"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reports/revenue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetRevenueReport(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reports/revenue - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reports/revenue - Report built: current=%d, previous=%d",
		result.CurrentMonthRevenue, result.PreviousMonthRevenue)
	handlers.RespondJSON(w, http.StatusOK, result)
}
