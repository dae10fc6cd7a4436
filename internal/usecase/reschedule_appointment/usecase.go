package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
	conflictService "github.com/m04kA/SMC-SchedulingService/internal/service/conflict"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase перенос и редактирование записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	availability    AvailabilityResolver
	conflictChecker ConflictChecker
	staffClient     StaffServiceClient
	catalogClient   CatalogServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр usecase переноса записи
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availability AvailabilityResolver,
	conflictChecker ConflictChecker,
	staffClient StaffServiceClient,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		availability:    availability,
		conflictChecker: conflictChecker,
		staffClient:     staffClient,
		catalogClient:   catalogClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет перенос/редактирование записи
//
// Флоу:
// 1. Валидация входных данных
// 2. В serializable-транзакции:
//   - загрузка записи с блокировкой (FOR UPDATE)
//   - проверка, что запись редактируема (pending/confirmed)
//   - применение изменений (новая услуга пересчитывает длительность и цену)
//   - при изменении слота: проверка рабочих часов и конфликтов
//     с исключением собственного id
//   - сохранение; статус не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: updating appointment id=%d", req.AppointmentID)

	var updated *domain.Appointment

	// 2. Загрузка, проверка и обновление в одной serializable-транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to load appointment: %w", ErrInternal, err)
		}

		if !appt.CanBeRescheduled() {
			return fmt.Errorf("%w: status is %s", ErrNotEditable, appt.Status)
		}

		if err := uc.applyChanges(txCtx, appt, req); err != nil {
			return err
		}

		if req.hasTimingChange() {
			if err := uc.ensureSlotAvailable(txCtx, appt); err != nil {
				return err
			}
		}

		if err := uc.appointmentRepo.Update(txCtx, appt); err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return &ConflictError{Conflict: &domain.Conflict{
					Kind:  domain.ConflictAppointment,
					Label: "другая запись",
					Start: appt.StartAt,
					End:   appt.EndAt,
				}}
			}
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
		}

		updated = appt
		return nil
	})
	if err != nil {
		var conflictErr *ConflictError
		switch {
		case errors.As(err, &conflictErr):
			uc.logger.Warn("RescheduleAppointment: slot conflict for appointment=%d: %s", req.AppointmentID, conflictErr.Conflict.Label)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("RescheduleAppointment: failed for appointment=%d: %v", req.AppointmentID, err)
		default:
			uc.logger.Warn("RescheduleAppointment: rejected for appointment=%d: %v", req.AppointmentID, err)
		}
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully updated appointment id=%d", req.AppointmentID)
	return fromDomain(updated), nil
}

// applyChanges применяет частичные изменения из запроса к загруженной записи
// Смена услуги пересчитывает EndAt от актуального StartAt и снапшотит новую цену
func (uc *UseCase) applyChanges(ctx context.Context, appt *domain.Appointment, req *Request) error {
	if req.ProfessionalID != nil && *req.ProfessionalID != appt.ProfessionalID {
		professional, err := uc.staffClient.GetProfessional(ctx, appt.UnitID, *req.ProfessionalID)
		if err != nil {
			if errors.Is(err, staffservice.ErrProfessionalNotFound) {
				return ErrProfessionalNotFound
			}
			return fmt.Errorf("%w: staff service error: %v", ErrInternal, err)
		}
		if !professional.Active {
			return ErrProfessionalInactive
		}
		appt.ProfessionalID = *req.ProfessionalID
	}

	if req.StartAt != nil {
		duration := appt.EndAt.Sub(appt.StartAt)
		appt.StartAt = *req.StartAt
		appt.EndAt = req.StartAt.Add(duration)
	}

	if req.ServiceID != nil {
		service, err := uc.catalogClient.GetService(ctx, appt.UnitID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogservice.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: catalog service error: %v", ErrInternal, err)
		}

		appt.ServiceID = service.ID
		appt.ServiceName = service.Name
		appt.EndAt = appt.StartAt.Add(time.Duration(service.DurationMinutes) * time.Minute)
		if service.Price != nil {
			appt.ServicePrice = *service.Price
		} else {
			appt.ServicePrice = 0
		}
	}

	if req.ClientName != nil {
		appt.ClientName = *req.ClientName
	}
	if req.ClientPhone != nil {
		appt.ClientPhone = req.ClientPhone
	}
	if req.ClientBirthDate != nil {
		appt.ClientBirthDate = req.ClientBirthDate
	}
	if req.Notes != nil {
		appt.Notes = req.Notes
	}

	return nil
}

// ensureSlotAvailable проверяет рабочие часы и конфликты для нового слота,
// исключая саму переносимую запись из поиска пересечений
func (uc *UseCase) ensureSlotAvailable(ctx context.Context, appt *domain.Appointment) error {
	day, err := uc.availability.Resolve(ctx, appt.UnitID, appt.StartAt)
	if err != nil {
		return fmt.Errorf("%w: availability resolution failed: %w", ErrInternal, err)
	}

	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		if day.HolidayLabel != nil {
			return fmt.Errorf("%w: %s", ErrUnitClosed, *day.HolidayLabel)
		}
		return ErrUnitClosed
	}

	slotStart := types.NewTimeString(appt.StartAt)
	slotEnd := types.NewTimeString(appt.EndAt)

	if slotStart.IsBefore(*day.OpenTime) || slotEnd.IsAfter(*day.CloseTime) {
		return fmt.Errorf("%w: slot %s-%s is outside %s-%s",
			ErrOutsideWorkingHours, slotStart, slotEnd, *day.OpenTime, *day.CloseTime)
	}

	conflict, err := uc.conflictChecker.Check(ctx, appt.UnitID, appt.ProfessionalID, appt.StartAt, appt.EndAt, &appt.ID)
	if err != nil {
		if errors.Is(err, conflictService.ErrInvalidInterval) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return fmt.Errorf("%w: conflict check failed: %w", ErrInternal, err)
	}
	if conflict != nil {
		return &ConflictError{Conflict: conflict}
	}

	return nil
}
