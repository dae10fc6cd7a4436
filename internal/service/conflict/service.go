package conflict

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	staffClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Service детектор конфликтов слотов
//
// Проверка здесь - быстрый путь для понятного ответа пользователю.
// Настоящую гарантию отсутствия пересечений даёт exclusion constraint в БД:
// два конкурентных писателя не могут оба успешно закоммитить пересекающиеся
// интервалы, опоздавший получает отказ хранилища (см. репозиторий записей)
type Service struct {
	appointmentRepo AppointmentRepository
	staffClient     StaffServiceClient
	breakResolver   BreakResolver
	logger          Logger
}

// NewService создает новый экземпляр детектора конфликтов
func NewService(
	appointmentRepo AppointmentRepository,
	staffClient StaffServiceClient,
	breakResolver BreakResolver,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		staffClient:     staffClient,
		breakResolver:   breakResolver,
		logger:          logger,
	}
}

// Check проверяет, свободен ли слот [start, end) у мастера
// Возвращает nil, если конфликтов нет
//
// Порядок проверок (первое совпадение выигрывает):
//  1. Пересечение с окном перерыва мастера - синтетический конфликт,
//     чтобы вызывающая сторона могла отличить "занято перерывом"
//     от "занято другим клиентом"
//  2. Пересечение с существующей не отменённой записью
//
// Перерыв сравнивается по времени дня (ежедневно повторяющееся окно),
// записи - по абсолютным меткам времени, полуоткрытые интервалы:
// касание границ конфликтом не считается
func (s *Service) Check(
	ctx context.Context,
	unitID int64,
	professionalID int64,
	start, end time.Time,
	excludeID *int64,
) (*domain.Conflict, error) {
	if err := validateInterval(start, end); err != nil {
		return nil, err
	}

	// 1. Перерыв мастера
	professional, err := s.staffClient.GetProfessional(ctx, unitID, professionalID)
	if err != nil {
		if errors.Is(err, staffClient.ErrProfessionalNotFound) {
			s.logger.Warn("Check: professional id=%d not found in unit=%d", professionalID, unitID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Check: failed to get professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if breakWindow := s.breakResolver.ResolveBreak(professional); breakWindow != nil {
		if breakWindow.Overlaps(types.NewTimeString(start), types.NewTimeString(end)) {
			s.logger.Info("Check: slot %s-%s blocked by break %s-%s for professional=%d",
				start.Format(time.RFC3339), end.Format(time.RFC3339),
				breakWindow.Start, breakWindow.End, professionalID)
			return breakConflict(breakWindow, start), nil
		}
	}

	// 2. Существующие записи
	overlapping, err := s.appointmentRepo.ListActiveOverlapping(ctx, professionalID, start, end, excludeID)
	if err != nil {
		s.logger.Error("Check: failed to list overlapping appointments for professional=%d: %v",
			professionalID, err)
		return nil, fmt.Errorf("%w: failed to list overlapping appointments: %w", ErrInternal, err)
	}

	if len(overlapping) > 0 {
		blocking := overlapping[0]
		s.logger.Info("Check: slot %s-%s blocked by appointment id=%d (client=%s) for professional=%d",
			start.Format(time.RFC3339), end.Format(time.RFC3339),
			blocking.ID, blocking.ClientName, professionalID)
		return &domain.Conflict{
			Kind:          domain.ConflictAppointment,
			AppointmentID: &blocking.ID,
			Label:         blocking.ClientName,
			Start:         blocking.StartAt,
			End:           blocking.EndAt,
		}, nil
	}

	return nil, nil
}

// validateInterval проверяет интервал: end > start, в пределах одного
// календарного дня (перерывы - ежедневные окна, сравнение через полночь
// не определено)
func validateInterval(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInterval)
	}

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return fmt.Errorf("%w: interval must not cross a day boundary", ErrInvalidInterval)
	}

	return nil
}

// breakConflict строит синтетический конфликт для окна перерыва
// на календарный день запрошенного слота
func breakConflict(breakWindow *domain.BreakWindow, day time.Time) *domain.Conflict {
	return &domain.Conflict{
		Kind:  domain.ConflictBreak,
		Label: fmt.Sprintf("перерыв %s-%s", breakWindow.Start, breakWindow.End),
		Start: atTimeOfDay(day, breakWindow.Start),
		End:   atTimeOfDay(day, breakWindow.End),
	}
}

// atTimeOfDay совмещает дату дня и время дня "HH:MM"
func atTimeOfDay(day time.Time, ts types.TimeString) time.Time {
	minutes, err := ts.MinutesOfDay()
	if err != nil {
		return day
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, day.Location())
}
