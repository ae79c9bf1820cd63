package get_available_slots

import (
	"time"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/pkg/types"
)

// generateTimeSlots генерирует доступную сетку слотов на день
// Чистая функция от (дата, рабочие часы, текущий момент):
// - выходной день (воскресенье) - слотов нет независимо от остального состояния
// - слоты идут от часа открытия с фиксированным шагом строго до часа закрытия
// - для сегодняшней даты отбрасываются все слоты, чей час не позже текущего:
//   запись день в день требует запаса минимум до начала следующего часа
func generateTimeSlots(hours domain.BusinessHours, requestDate, now time.Time) ([]types.TimeString, error) {
	if requestDate.Weekday() == domain.RestDay {
		return []types.TimeString{}, nil
	}

	// Прошедшие даты не бронируются
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	openTime, err := types.NewTimeStringFromHour(hours.OpeningHour)
	if err != nil {
		return nil, err
	}
	closeTime, err := types.NewTimeStringFromHour(hours.ClosingHour)
	if err != nil {
		return nil, err
	}

	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		allSlots = append(allSlots, currentSlot)

		currentSlot, err = currentSlot.AddMinutes(hours.SlotIntervalMinutes)
		if err != nil {
			return nil, err
		}
	}

	// Не сегодня - вся сетка доступна
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Сегодня: оставляем только слоты со строго более поздним часом
	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if slot.Hour() > now.Hour() {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// filterTakenSlots убирает из сетки занятые времена, сохраняя порядок
func filterTakenSlots(slots, taken []types.TimeString) []types.TimeString {
	takenSet := make(map[types.TimeString]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := takenSet[slot]; !ok {
			available = append(available, slot)
		}
	}

	return available
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
