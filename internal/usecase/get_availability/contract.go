package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AvailabilityResolver интерфейс календаря доступности
type AvailabilityResolver interface {
	Resolve(ctx context.Context, unitID int64, date time.Time) (*domain.DayAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
