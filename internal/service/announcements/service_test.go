package announcements

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/internal/events"
	announcementRepo "github.com/cortefacil/booking-service/internal/infra/storage/announcement"
	"github.com/cortefacil/booking-service/internal/service/announcements/models"
)

// memRepo хранит объявления в памяти и записывает порядок вызовов
type memRepo struct {
	records    []*domain.AnnouncementRecord
	nextID     int
	ops        []string
	activeErr  error
	historyErr error
}

func (r *memRepo) GetActive(_ context.Context) (*domain.AnnouncementRecord, error) {
	if r.activeErr != nil {
		return nil, r.activeErr
	}
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].IsActive {
			return r.records[i], nil
		}
	}
	return nil, announcementRepo.ErrAnnouncementNotFound
}

func (r *memRepo) GetHistory(_ context.Context, activeAfter time.Time) ([]*domain.AnnouncementRecord, error) {
	if r.historyErr != nil {
		return nil, r.historyErr
	}
	var out []*domain.AnnouncementRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if !rec.IsActive && rec.LastActiveAt.After(activeAfter) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memRepo) DeactivateAll(_ context.Context) error {
	r.ops = append(r.ops, "deactivate_all")
	for _, rec := range r.records {
		rec.IsActive = false
	}
	return nil
}

func (r *memRepo) Create(_ context.Context, rec *domain.AnnouncementRecord) (*domain.AnnouncementRecord, error) {
	r.ops = append(r.ops, "create")
	r.nextID++
	stored := *rec
	stored.ID = string(rune('a' + r.nextID))
	stored.LastActiveAt = time.Now()
	r.records = append(r.records, &stored)
	return &stored, nil
}

func (r *memRepo) activeCount() int {
	n := 0
	for _, rec := range r.records {
		if rec.IsActive {
			n++
		}
	}
	return n
}

type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakePublisher struct {
	published []events.Topic
}

func (p *fakePublisher) Publish(topic events.Topic) {
	p.published = append(p.published, topic)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *memRepo, tx *passthroughTxManager, pub *fakePublisher) *Service {
	return NewService(repo, tx, pub, nopLogger{})
}

func TestService_Save_Activate(t *testing.T) {
	repo := &memRepo{}
	tx := &passthroughTxManager{}
	pub := &fakePublisher{}
	svc := newTestService(repo, tx, pub)

	resp, err := svc.Save(context.Background(), &models.SaveAnnouncementRequest{
		Message:  "Promoção de novembro!",
		IsActive: true,
		Type:     "info",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsActive)
	assert.Equal(t, "Promoção de novembro!", resp.Message)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{"deactivate_all", "create"}, repo.ops, "old rows must be deactivated before the insert")
	assert.Equal(t, []events.Topic{events.TopicAnnouncementsChanged}, pub.published)
}

func TestService_Save_SecondActivationReplacesFirst(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo, &passthroughTxManager{}, &fakePublisher{})
	ctx := context.Background()

	_, err := svc.Save(ctx, &models.SaveAnnouncementRequest{Message: "primeiro", IsActive: true, Type: "info"})
	require.NoError(t, err)
	_, err = svc.Save(ctx, &models.SaveAnnouncementRequest{Message: "segundo", IsActive: true, Type: "alert"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.activeCount())

	active := svc.GetActive(ctx)
	assert.True(t, active.IsActive)
	assert.Equal(t, "segundo", active.Message)
	assert.Equal(t, "alert", active.Type)
}

func TestService_Save_Deactivate(t *testing.T) {
	repo := &memRepo{}
	pub := &fakePublisher{}
	svc := newTestService(repo, &passthroughTxManager{}, pub)
	ctx := context.Background()

	_, err := svc.Save(ctx, &models.SaveAnnouncementRequest{Message: "ativo", IsActive: true, Type: "success"})
	require.NoError(t, err)

	resp, err := svc.Save(ctx, &models.SaveAnnouncementRequest{IsActive: false})
	require.NoError(t, err)

	assert.False(t, resp.IsActive)
	assert.Empty(t, resp.Message)
	assert.Equal(t, 0, repo.activeCount())
	assert.Len(t, pub.published, 2)
}

func TestService_Save_Validation(t *testing.T) {
	svc := newTestService(&memRepo{}, &passthroughTxManager{}, &fakePublisher{})
	ctx := context.Background()

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := svc.Save(ctx, &models.SaveAnnouncementRequest{Message: "m", IsActive: true, Type: "warning"})
		assert.ErrorIs(t, err, ErrInvalidType)
	})

	t.Run("empty type defaults to info", func(t *testing.T) {
		resp, err := svc.Save(ctx, &models.SaveAnnouncementRequest{Message: "m", IsActive: true})
		require.NoError(t, err)
		assert.Equal(t, "info", resp.Type)
	})

	t.Run("blank message rejected when activating", func(t *testing.T) {
		_, err := svc.Save(ctx, &models.SaveAnnouncementRequest{Message: "   ", IsActive: true, Type: "info"})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})
}

func TestService_GetActive_FallsBackToInactive(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		svc := newTestService(&memRepo{}, &passthroughTxManager{}, &fakePublisher{})

		resp := svc.GetActive(context.Background())
		assert.False(t, resp.IsActive)
		assert.Empty(t, resp.Message)
		assert.Equal(t, "info", resp.Type)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := &memRepo{activeErr: errors.New("connection refused")}
		svc := newTestService(repo, &passthroughTxManager{}, &fakePublisher{})

		resp := svc.GetActive(context.Background())
		assert.False(t, resp.IsActive)
	})
}

func TestService_GetHistory(t *testing.T) {
	now := time.Now()
	repo := &memRepo{records: []*domain.AnnouncementRecord{
		{ID: "old", Message: "antigo", Type: domain.AnnouncementInfo, LastActiveAt: now.Add(-100 * time.Hour)},
		{ID: "recent", Message: "recente", Type: domain.AnnouncementAlert, LastActiveAt: now.Add(-2 * time.Hour)},
		{ID: "active", Message: "ativo", Type: domain.AnnouncementInfo, IsActive: true, LastActiveAt: now},
	}}
	svc := newTestService(repo, &passthroughTxManager{}, &fakePublisher{})

	resp, err := svc.GetHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Announcements, 1, "active row and rows older than the retention window are excluded")
	assert.Equal(t, "recent", resp.Announcements[0].ID)

	repo.historyErr = errors.New("connection refused")
	_, err = svc.GetHistory(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
