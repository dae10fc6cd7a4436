package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий append-only записей аудита:
// история отмен и журнал удалений. Записи никогда не обновляются
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория истории
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCancellation записывает снимок отмены
// Вызывается внутри транзакции отмены: если запись не удалась,
// отмена целиком откатывается (история - единственное долговечное
// свидетельство опоздания/комиссии для биллинга)
func (r *Repository) CreateCancellation(ctx context.Context, rec *domain.CancellationHistoryRecord) (*domain.CancellationHistoryRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("cancellation_history").
		Columns(
			"id",
			"appointment_id",
			"unit_id",
			"scheduled_at",
			"cancelled_at",
			"minutes_before",
			"is_late",
			"is_no_show",
			"source",
			"professional_name",
			"service_name",
			"client_name",
			"fee_amount",
		).
		Values(
			rec.ID,
			rec.AppointmentID,
			rec.UnitID,
			rec.ScheduledAt,
			rec.CancelledAt,
			rec.MinutesBefore,
			rec.IsLate,
			rec.IsNoShow,
			rec.Source,
			rec.ProfessionalName,
			rec.ServiceName,
			rec.ClientName,
			rec.FeeAmount,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCancellation - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateCancellation - execute insert: %w", ErrExecQuery, err)
	}

	rec.CreatedAt = createdAt.Time

	return rec, nil
}

// CreateDeletionAudit записывает снимок состояния записи перед жёстким удалением
func (r *Repository) CreateDeletionAudit(ctx context.Context, rec *domain.DeletionAuditRecord) (*domain.DeletionAuditRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("deletion_audit").
		Columns(
			"id",
			"appointment_id",
			"unit_id",
			"original_status",
			"service_price",
			"payment_method",
			"actor_id",
			"reason",
		).
		Values(
			rec.ID,
			rec.AppointmentID,
			rec.UnitID,
			rec.OriginalStatus,
			rec.ServicePrice,
			rec.PaymentMethod,
			rec.ActorID,
			rec.Reason,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateDeletionAudit - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateDeletionAudit - execute insert: %w", ErrExecQuery, err)
	}

	rec.CreatedAt = createdAt.Time

	return rec, nil
}

// ListCancellationsByUnit возвращает историю отмен юнита за период
// Используется биллингом для сверки комиссий
func (r *Repository) ListCancellationsByUnit(ctx context.Context, unitID int64, from, to time.Time) ([]*domain.CancellationHistoryRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_id",
		"unit_id",
		"scheduled_at",
		"cancelled_at",
		"minutes_before",
		"is_late",
		"is_no_show",
		"source",
		"professional_name",
		"service_name",
		"client_name",
		"fee_amount",
		"created_at",
	).
		From("cancellation_history").
		Where(squirrel.Eq{"unit_id": unitID}).
		Where(squirrel.GtOrEq{"cancelled_at": from}).
		Where(squirrel.Lt{"cancelled_at": to}).
		OrderBy("cancelled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCancellationsByUnit - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCancellationsByUnit - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.CancellationHistoryRecord, 0)
	for rows.Next() {
		var rec domain.CancellationHistoryRecord
		var createdAt sql.NullTime

		err := rows.Scan(
			&rec.ID,
			&rec.AppointmentID,
			&rec.UnitID,
			&rec.ScheduledAt,
			&rec.CancelledAt,
			&rec.MinutesBefore,
			&rec.IsLate,
			&rec.IsNoShow,
			&rec.Source,
			&rec.ProfessionalName,
			&rec.ServiceName,
			&rec.ClientName,
			&rec.FeeAmount,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCancellationsByUnit - scan row: %w", ErrScanRow, err)
		}

		rec.CreatedAt = createdAt.Time
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCancellationsByUnit - rows error: %w", ErrScanRow, err)
	}

	return records, nil
}

// DeleteCancellation удаляет запись истории отмен (административная чистка)
// Не влияет на саму запись на приём
func (r *Repository) DeleteCancellation(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cancellation_history").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteCancellation - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteCancellation - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteCancellation - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
