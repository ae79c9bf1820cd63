package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default business hours
const (
	DefaultOpeningHour         = 9  // 09:00
	DefaultClosingHour         = 19 // последний слот начинается в 18:00
	DefaultSlotIntervalMinutes = 60
)

// RestDay выходной день: слоты не предлагаются независимо от занятости
const RestDay = time.Sunday

// Phone validation constants
const (
	MinPhoneDigits = 10 // DDD + номер
	MaxPhoneDigits = 11 // цифры сверх лимита отбрасываются до валидации
)

// MaxCustomerNameLength максимальная длина имени клиента
const MaxCustomerNameLength = 120

// AnnouncementHistoryRetention окно хранения истории объявлений
const AnnouncementHistoryRetention = 72 * time.Hour

// BusinessHours рабочие часы и шаг сетки слотов
// Слоты генерируются от OpeningHour с шагом SlotIntervalMinutes строго до ClosingHour
type BusinessHours struct {
	OpeningHour         int
	ClosingHour         int
	SlotIntervalMinutes int
}

// DefaultBusinessHours возвращает конфигурацию рабочих часов по умолчанию
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpeningHour:         DefaultOpeningHour,
		ClosingHour:         DefaultClosingHour,
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
	}
}

// IsValid проверяет согласованность рабочих часов
func (h BusinessHours) IsValid() bool {
	return h.OpeningHour >= 0 && h.OpeningHour < h.ClosingHour &&
		h.ClosingHour <= 24 && h.SlotIntervalMinutes > 0
}
