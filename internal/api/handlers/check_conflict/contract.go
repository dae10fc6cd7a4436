package check_conflict

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type ConflictService interface {
	Check(ctx context.Context, unitID, professionalID int64, start, end time.Time, excludeID *int64) (*domain.Conflict, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
