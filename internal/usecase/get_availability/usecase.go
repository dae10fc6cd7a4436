package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UseCase получение доступности юнита на дату
type UseCase struct {
	availability AvailabilityResolver
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase доступности
func NewUseCase(availability AvailabilityResolver, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute возвращает разрешённую доступность юнита на дату:
// праздничное исключение имеет приоритет над недельным расписанием,
// недельное расписание - над дефолтными часами юнита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.UnitID <= 0 {
		return nil, fmt.Errorf("%w: unitId must be positive", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid date %q for unit=%d", req.Date, req.UnitID)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	uc.logger.Info("GetAvailability: resolving unit=%d, date=%s", req.UnitID, req.Date)

	day, err := uc.availability.Resolve(ctx, req.UnitID, date)
	if err != nil {
		uc.logger.Error("GetAvailability: resolution failed for unit=%d, date=%s: %v", req.UnitID, req.Date, err)
		return nil, fmt.Errorf("%w: availability resolution failed: %v", ErrInternal, err)
	}

	return fromDomain(req.UnitID, req.Date, day), nil
}
