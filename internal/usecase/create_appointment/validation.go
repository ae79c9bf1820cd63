package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if !domain.IsValidServiceID(req.ServiceID) {
		return ErrServiceNotFound
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// normalizePhone оставляет только цифры и отбрасывает всё сверх максимума
func normalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
		if digits.Len() == domain.MaxPhoneDigits {
			break
		}
	}
	return digits.String()
}

// validatePhone проверяет нормализованный телефон
func validatePhone(digits string) error {
	if len(digits) < domain.MinPhoneDigits {
		return fmt.Errorf("%w: at least %d digits required", ErrInvalidPhone, domain.MinPhoneDigits)
	}
	return nil
}

// formatPhone приводит цифры к маске отображения: (XX) XXXXX-XXXX
// Для 10 цифр получается (XX) XXXX-XXXX, дефис всегда перед последними четырьмя
func formatPhone(digits string) string {
	if len(digits) < 3 {
		return digits
	}

	rest := digits[2:]
	if len(rest) <= 4 {
		return fmt.Sprintf("(%s) %s", digits[:2], rest)
	}

	return fmt.Sprintf("(%s) %s-%s", digits[:2], rest[:len(rest)-4], rest[len(rest)-4:])
}

// validateSlotTime проверяет, что слот бронируем:
// не выходной, не прошедшая дата, время лежит на сетке рабочих часов,
// для сегодняшней даты час слота строго позже текущего
func validateSlotTime(hours domain.BusinessHours, date time.Time, startTime types.TimeString, now time.Time) error {
	if date.Weekday() == domain.RestDay {
		return ErrClosedDay
	}

	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	minutes := startTime.TotalMinutes()
	openMinutes := hours.OpeningHour * 60
	closeMinutes := hours.ClosingHour * 60

	if minutes < openMinutes || minutes >= closeMinutes {
		return fmt.Errorf("%w: %s is outside business hours", ErrInvalidTimeSlot, startTime)
	}

	if (minutes-openMinutes)%hours.SlotIntervalMinutes != 0 {
		return fmt.Errorf("%w: %s is not aligned to the slot grid", ErrInvalidTimeSlot, startTime)
	}

	if isSameDay(date, now) && startTime.Hour() <= now.Hour() {
		return ErrTooLateToBook
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
