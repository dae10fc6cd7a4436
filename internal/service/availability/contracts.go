package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория календарных данных юнита
type ScheduleRepository interface {
	GetWeekdayHours(ctx context.Context, unitID int64, weekday time.Weekday) (*domain.WeekdayHours, error)
	GetHolidayOverride(ctx context.Context, unitID int64, date time.Time) (*domain.HolidayOverride, error)
	GetUnitDefaultHours(ctx context.Context, unitID int64) (*domain.UnitDefaultHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
