package domain

import "time"

// AnnouncementType visual/semantic category of the site-wide banner
type AnnouncementType string

const (
	AnnouncementInfo    AnnouncementType = "info"
	AnnouncementAlert   AnnouncementType = "alert"
	AnnouncementSuccess AnnouncementType = "success"
)

// IsValidAnnouncementType проверяет, что тип входит в допустимый набор
func IsValidAnnouncementType(t AnnouncementType) bool {
	switch t {
	case AnnouncementInfo, AnnouncementAlert, AnnouncementSuccess:
		return true
	default:
		return false
	}
}

// Announcement текущее состояние баннера объявлений
type Announcement struct {
	Message  string
	IsActive bool
	Type     AnnouncementType
}

// InactiveAnnouncement sentinel-значение "баннер выключен"
// Возвращается вместо ошибки: баннер некритичен и не должен ломать страницу
func InactiveAnnouncement() Announcement {
	return Announcement{Message: "", IsActive: false, Type: AnnouncementInfo}
}

// AnnouncementRecord строка объявления в хранилище
// Инвариант: в любой момент активна не более чем одна строка
type AnnouncementRecord struct {
	ID           string
	Message      string
	Type         AnnouncementType
	IsActive     bool
	LastActiveAt time.Time
}

// AnnouncementHistoryItem прошлое (деактивированное) объявление для истории дашборда
type AnnouncementHistoryItem struct {
	ID           string
	Message      string
	Type         AnnouncementType
	LastActiveAt time.Time
}

// HistoryItem возвращает представление строки для истории
func (r *AnnouncementRecord) HistoryItem() AnnouncementHistoryItem {
	return AnnouncementHistoryItem{
		ID:           r.ID,
		Message:      r.Message,
		Type:         r.Type,
		LastActiveAt: r.LastActiveAt,
	}
}
