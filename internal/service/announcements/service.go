package announcements

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/internal/events"
	announcementRepo "github.com/cortefacil/booking-service/internal/infra/storage/announcement"
	"github.com/cortefacil/booking-service/internal/service/announcements/models"
)

// Service сервис для работы с баннером объявлений
type Service struct {
	announcementRepo AnnouncementRepository
	txManager        TransactionManager
	publisher        EventPublisher
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(
	announcementRepo AnnouncementRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		announcementRepo: announcementRepo,
		txManager:        txManager,
		publisher:        publisher,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// GetActive возвращает текущее состояние баннера
// Ошибок наружу не отдаёт: баннер некритичен, при сбое хранилища
// возвращается выключенное состояние, а ошибка только логируется
func (s *Service) GetActive(ctx context.Context) *models.AnnouncementResponse {
	rec, err := s.announcementRepo.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, announcementRepo.ErrAnnouncementNotFound) {
			s.logger.Error("GetActive: repository error: %v", err)
		}
		return models.FromDomainAnnouncement(domain.InactiveAnnouncement())
	}

	return models.FromDomainAnnouncement(domain.Announcement{
		Message:  rec.Message,
		IsActive: true,
		Type:     rec.Type,
	})
}

// GetHistory возвращает деактивированные объявления за период хранения
func (s *Service) GetHistory(ctx context.Context) (*models.HistoryResponse, error) {
	threshold := s.timeProvider.Now().Add(-domain.AnnouncementHistoryRetention)
	s.logger.Info("GetHistory: fetching announcements deactivated after %s", threshold.Format(domain.DateFormat))

	records, err := s.announcementRepo.GetHistory(ctx, threshold)
	if err != nil {
		s.logger.Error("GetHistory: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetHistory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetHistory: successfully fetched %d announcements", len(records))
	return models.FromDomainHistory(records), nil
}

// Save сохраняет новое состояние баннера
// При активации деактивация старых строк и вставка новой идут в одной
// SERIALIZABLE транзакции: активной строки не может оказаться больше одной
func (s *Service) Save(ctx context.Context, req *models.SaveAnnouncementRequest) (*models.AnnouncementResponse, error) {
	s.logger.Info("Save: isActive=%t, type=%s", req.IsActive, req.Type)

	annType := domain.AnnouncementType(req.Type)
	if req.Type == "" {
		annType = domain.AnnouncementInfo
	}
	if !domain.IsValidAnnouncementType(annType) {
		s.logger.Warn("Save: invalid announcement type=%s", req.Type)
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, req.Type)
	}

	// Выключение баннера: достаточно деактивировать все строки
	if !req.IsActive {
		if err := s.announcementRepo.DeactivateAll(ctx); err != nil {
			s.logger.Error("Save: failed to deactivate announcements: %v", err)
			return nil, fmt.Errorf("%w: Save - failed to deactivate: %v", ErrInternal, err)
		}

		s.logger.Info("Save: banner deactivated")
		s.publisher.Publish(events.TopicAnnouncementsChanged)
		return models.FromDomainAnnouncement(domain.InactiveAnnouncement()), nil
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		s.logger.Warn("Save: empty message for active announcement")
		return nil, ErrEmptyMessage
	}

	var created *domain.AnnouncementRecord

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.announcementRepo.DeactivateAll(txCtx); err != nil {
			return fmt.Errorf("%w: Save - failed to deactivate: %v", ErrInternal, err)
		}

		rec, err := s.announcementRepo.Create(txCtx, &domain.AnnouncementRecord{
			Message:  message,
			Type:     annType,
			IsActive: true,
		})
		if err != nil {
			return fmt.Errorf("%w: Save - failed to create: %v", ErrInternal, err)
		}

		created = rec
		return nil
	})
	if err != nil {
		s.logger.Error("Save: transaction failed: %v", err)
		return nil, err
	}

	s.logger.Info("Save: announcement id=%s activated", created.ID)
	s.publisher.Publish(events.TopicAnnouncementsChanged)

	return models.FromDomainAnnouncement(domain.Announcement{
		Message:  created.Message,
		IsActive: true,
		Type:     created.Type,
	}), nil
}
