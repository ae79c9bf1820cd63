package announcement

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/cortefacil/booking-service/internal/domain"
	"github.com/cortefacil/booking-service/pkg/dbmetrics"
	"github.com/cortefacil/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с объявлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive получает активное объявление
// Если активных строк по какой-то причине несколько, берётся активированная
// последней (защитная сортировка по last_active_at DESC)
func (r *Repository) GetActive(ctx context.Context) (*domain.AnnouncementRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := announcementColumns().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("last_active_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rec, err := r.scanOne(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAnnouncementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan announcement: %v", ErrScanRow, err)
	}

	return rec, nil
}

// GetHistory получает деактивированные объявления, бывшие активными после activeAfter,
// свежие первыми
func (r *Repository) GetHistory(ctx context.Context, activeAfter time.Time) ([]*domain.AnnouncementRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := announcementColumns().
		Where(squirrel.Eq{"is_active": false}).
		Where(squirrel.Gt{"last_active_at": activeAfter}).
		OrderBy("last_active_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHistory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHistory - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.AnnouncementRecord, 0)
	for rows.Next() {
		var rec domain.AnnouncementRecord
		var lastActiveAt sql.NullTime

		err := rows.Scan(&rec.ID, &rec.Message, &rec.Type, &rec.IsActive, &lastActiveAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetHistory - scan row: %v", ErrScanRow, err)
		}

		rec.LastActiveAt = lastActiveAt.Time
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHistory - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// DeactivateAll снимает флаг активности со всех активных объявлений
// Ноль затронутых строк - не ошибка: "выключить то, что включено" идемпотентно
func (r *Repository) DeactivateAll(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("announcements").
		Set("is_active", false).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeactivateAll - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeactivateAll - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Create вставляет новое активное объявление с отметкой активации "сейчас"
// Вызывается строго после DeactivateAll внутри одной транзакции,
// чтобы активной оставалась ровно одна строка
func (r *Repository) Create(ctx context.Context, rec *domain.AnnouncementRecord) (*domain.AnnouncementRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("announcements").
		Columns(
			"id",
			"message",
			"type",
			"is_active",
			"last_active_at",
		).
		Values(
			rec.ID,
			rec.Message,
			rec.Type,
			rec.IsActive,
			squirrel.Expr("NOW()"),
		).
		Suffix("RETURNING last_active_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var lastActiveAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&lastActiveAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rec.LastActiveAt = lastActiveAt.Time

	return rec, nil
}

func announcementColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"message",
		"type",
		"is_active",
		"last_active_at",
	).From("announcements")
}

func (r *Repository) scanOne(row *sql.Row) (*domain.AnnouncementRecord, error) {
	var rec domain.AnnouncementRecord
	var lastActiveAt sql.NullTime

	err := row.Scan(&rec.ID, &rec.Message, &rec.Type, &rec.IsActive, &lastActiveAt)
	if err != nil {
		return nil, err
	}

	rec.LastActiveAt = lastActiveAt.Time
	return &rec, nil
}
