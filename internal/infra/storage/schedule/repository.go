package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий календарных данных юнита:
// недельное расписание, праздничные исключения и дефолтные рабочие часы
// Ядро планирования календарь только читает; настройка идёт через сервис юнитов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekdayHours получает строку недельного расписания юнита для дня недели
func (r *Repository) GetWeekdayHours(ctx context.Context, unitID int64, weekday time.Weekday) (*domain.WeekdayHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"unit_id",
		"weekday",
		"is_open",
		"open_time",
		"close_time",
		"created_at",
		"updated_at",
	).
		From("weekly_hours").
		Where(squirrel.Eq{"unit_id": unitID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekdayHours - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.WeekdayHours
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&hours.UnitID,
		&hours.Weekday,
		&hours.IsOpen,
		&hours.OpenTime,
		&hours.CloseTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWeekdayHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekdayHours - scan row: %w", ErrScanRow, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

// GetHolidayOverride получает праздничное исключение юнита на календарную дату
func (r *Repository) GetHolidayOverride(ctx context.Context, unitID int64, date time.Time) (*domain.HolidayOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"unit_id",
		"holiday_date",
		"label",
		"created_at",
	).
		From("holiday_overrides").
		Where(squirrel.Eq{"unit_id": unitID}).
		Where(squirrel.Eq{"holiday_date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayOverride - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.HolidayOverride
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.UnitID,
		&override.Date,
		&override.Label,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayOverride - scan row: %w", ErrScanRow, err)
	}

	override.CreatedAt = createdAt.Time

	return &override, nil
}

// GetUnitDefaultHours получает дефолтные рабочие часы юнита
// Грубая legacy-настройка: используется, когда недельное расписание
// для дня не настроено, чтобы система деградировала мягко
func (r *Repository) GetUnitDefaultHours(ctx context.Context, unitID int64) (*domain.UnitDefaultHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"unit_id",
		"open_time",
		"close_time",
	).
		From("unit_default_hours").
		Where(squirrel.Eq{"unit_id": unitID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetUnitDefaultHours - build select query: %v", ErrBuildQuery, err)
	}

	var defaults domain.UnitDefaultHours

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&defaults.UnitID,
		&defaults.OpenTime,
		&defaults.CloseTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDefaultHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnitDefaultHours - scan row: %w", ErrScanRow, err)
	}

	return &defaults, nil
}
