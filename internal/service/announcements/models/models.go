package models

import (
	"time"

	"github.com/cortefacil/booking-service/internal/domain"
)

// Request модели

// SaveAnnouncementRequest запрос на сохранение состояния баннера
type SaveAnnouncementRequest struct {
	Message  string `json:"message"`
	IsActive bool   `json:"isActive"`
	Type     string `json:"type"`
}

// Response модели

// AnnouncementResponse текущее состояние баннера
// При выключенном баннере message пустой, type возвращается как "info"
type AnnouncementResponse struct {
	Message  string `json:"message"`
	IsActive bool   `json:"isActive"`
	Type     string `json:"type"`
}

// HistoryItemResponse прошлое объявление в истории дашборда
type HistoryItemResponse struct {
	ID           string    `json:"id"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	LastActiveAt time.Time `json:"lastActiveAt"`
}

// HistoryResponse ответ со списком прошлых объявлений
type HistoryResponse struct {
	Announcements []HistoryItemResponse `json:"announcements"`
}

// Методы конвертации

// FromDomainAnnouncement конвертирует domain модель в DTO
func FromDomainAnnouncement(a domain.Announcement) *AnnouncementResponse {
	return &AnnouncementResponse{
		Message:  a.Message,
		IsActive: a.IsActive,
		Type:     string(a.Type),
	}
}

// FromDomainHistory конвертирует список записей хранилища в DTO истории
func FromDomainHistory(records []*domain.AnnouncementRecord) *HistoryResponse {
	resp := &HistoryResponse{
		Announcements: make([]HistoryItemResponse, 0, len(records)),
	}

	for _, rec := range records {
		item := rec.HistoryItem()
		resp.Announcements = append(resp.Announcements, HistoryItemResponse{
			ID:           item.ID,
			Message:      item.Message,
			Type:         string(item.Type),
			LastActiveAt: item.LastActiveAt,
		})
	}

	return resp
}
