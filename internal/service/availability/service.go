package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
)

// Service разрешает доступность юнита на дату
// Правила применяются слоями: праздничное исключение перекрывает недельное
// расписание, недельное расписание перекрывает дефолтные часы юнита
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Resolve возвращает статус открытия и действующие границы рабочих часов
// юнита на указанную дату
//
// Порядок разрешения:
//  1. Праздничное исключение на (юнит, дата) - закрыто, с меткой праздника
//  2. Строка недельного расписания для дня недели
//  3. Дефолтные часы юнита - когда недельное расписание для дня не настроено
//
// Двухуровневый fallback сохраняется намеренно: юниты, никогда не
// настраивавшие расписание по дням, не должны выглядеть вечно закрытыми
func (s *Service) Resolve(ctx context.Context, unitID int64, date time.Time) (*domain.DayAvailability, error) {
	// 1. Праздничное исключение имеет абсолютный приоритет
	holiday, err := s.scheduleRepo.GetHolidayOverride(ctx, unitID, date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
		s.logger.Error("Resolve: failed to get holiday override for unit=%d date=%s: %v",
			unitID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get holiday override: %w", ErrInternal, err)
	}
	if holiday != nil {
		s.logger.Info("Resolve: unit=%d closed on %s (holiday: %s)",
			unitID, date.Format(domain.DateFormat), holiday.Label)
		return &domain.DayAvailability{
			IsOpen:       false,
			HolidayLabel: &holiday.Label,
		}, nil
	}

	// 2. Недельное расписание для дня недели
	hours, err := s.scheduleRepo.GetWeekdayHours(ctx, unitID, date.Weekday())
	if err != nil && !errors.Is(err, scheduleRepo.ErrWeekdayHoursNotFound) {
		s.logger.Error("Resolve: failed to get weekday hours for unit=%d weekday=%d: %v",
			unitID, date.Weekday(), err)
		return nil, fmt.Errorf("%w: failed to get weekday hours: %w", ErrInternal, err)
	}
	if hours != nil {
		if !hours.IsOpen {
			return &domain.DayAvailability{IsOpen: false}, nil
		}
		return &domain.DayAvailability{
			IsOpen:    true,
			OpenTime:  hours.OpenTime,
			CloseTime: hours.CloseTime,
		}, nil
	}

	// 3. Fallback на дефолтные часы юнита
	defaults, err := s.scheduleRepo.GetUnitDefaultHours(ctx, unitID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDefaultHoursNotFound) {
			s.logger.Warn("Resolve: unit=%d has no weekday hours and no default hours, treating %s as closed",
				unitID, date.Format(domain.DateFormat))
			return &domain.DayAvailability{IsOpen: false}, nil
		}
		s.logger.Error("Resolve: failed to get default hours for unit=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: failed to get default hours: %w", ErrInternal, err)
	}

	s.logger.Info("Resolve: unit=%d using default hours %s-%s for %s",
		unitID, defaults.OpenTime, defaults.CloseTime, date.Format(domain.DateFormat))

	openTime := defaults.OpenTime
	closeTime := defaults.CloseTime
	return &domain.DayAvailability{
		IsOpen:    true,
		OpenTime:  &openTime,
		CloseTime: &closeTime,
	}, nil
}

// ResolveBreak возвращает окно перерыва мастера, только если перерыв включен
// и обе границы заданы; иначе nil
func (s *Service) ResolveBreak(professional *staffservice.Professional) *domain.BreakWindow {
	if professional == nil || !professional.LunchBreakEnabled {
		return nil
	}
	if professional.LunchBreakStart == nil || professional.LunchBreakEnd == nil {
		return nil
	}

	return &domain.BreakWindow{
		Start: *professional.LunchBreakStart,
		End:   *professional.LunchBreakEnd,
	}
}
