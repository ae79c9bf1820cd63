package models

// RevenueReportResponse сводка выручки за текущий календарный месяц
// Growth - изменение относительно прошлого месяца в процентах
type RevenueReportResponse struct {
	CurrentMonthRevenue   int     `json:"currentMonthRevenue"`
	PreviousMonthRevenue  int     `json:"previousMonthRevenue"`
	CurrentMonthBookings  int     `json:"currentMonthBookings"`
	PreviousMonthBookings int     `json:"previousMonthBookings"`
	Growth                float64 `json:"growth"`
}
