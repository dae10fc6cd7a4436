package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий политики отмены (singleton-конфигурация на юнит)
// Ядро планирования политику только читает; изменение идёт через настройки юнита
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория политики отмены
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUnit получает политику отмены юнита
func (r *Repository) GetByUnit(ctx context.Context, unitID int64) (*domain.CancellationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"unit_id",
		"grace_period_minutes",
		"late_fee_percent",
		"no_show_fee_percent",
		"created_at",
		"updated_at",
	).
		From("cancellation_policies").
		Where(squirrel.Eq{"unit_id": unitID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUnit - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.CancellationPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.UnitID,
		&p.GracePeriodMinutes,
		&p.LateFeePercent,
		&p.NoShowFeePercent,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUnit - scan row: %w", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

