package create_appointment

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

// UseCase создание записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	availability    AvailabilityResolver
	conflictChecker ConflictChecker
	staffClient     StaffServiceClient
	catalogClient   CatalogServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр usecase создания записи
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availability AvailabilityResolver,
	conflictChecker ConflictChecker,
	staffClient StaffServiceClient,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		availability:    availability,
		conflictChecker: conflictChecker,
		staffClient:     staffClient,
		catalogClient:   catalogClient,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет создание записи на приём
//
// Флоу:
// 1. Валидация входных данных
// 2. Получение мастера из StaffService (с проверкой активности)
// 3. Получение услуги из CatalogService (длительность определяет endAt, цена снапшотится)
// 4. В serializable-транзакции:
//   - проверка, что юнит открыт и слот внутри рабочих часов
//   - проверка конфликтов с перерывом и активными записями
//   - вставка записи (exclusion constraint БД даёт финальную гарантию от гонок)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: creating appointment unit=%d, professional=%d, service=%d, startAt=%s",
		req.UnitID, req.ProfessionalID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	// 2. Получаем мастера и проверяем, что он активен
	professional, err := uc.staffClient.GetProfessional(ctx, req.UnitID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, staffservice.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional=%d not found in unit=%d", req.ProfessionalID, req.UnitID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: staff service error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: staff service error: %v", ErrInternal, err)
	}

	if !professional.Active {
		uc.logger.Warn("CreateAppointment: professional=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalInactive
	}

	// 3. Получаем услугу: длительность определяет время окончания, цена снапшотится
	service, err := uc.catalogClient.GetService(ctx, req.UnitID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service=%d not found in unit=%d", req.ServiceID, req.UnitID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: catalog service error for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: catalog service error: %v", ErrInternal, err)
	}

	endAt := req.StartAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	servicePrice := float64(0)
	if service.Price != nil {
		servicePrice = *service.Price
	}

	now := uc.timeProvider.Now()

	var created *domain.Appointment

	// 4. Проверка доступности и вставка в одной serializable-транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.ensureWithinWorkingHours(txCtx, req.UnitID, req.StartAt, endAt); err != nil {
			return err
		}

		conflict, err := uc.conflictChecker.Check(txCtx, req.UnitID, req.ProfessionalID, req.StartAt, endAt, nil)
		if err != nil {
			if errors.Is(err, conflictService.ErrInvalidInterval) {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return fmt.Errorf("%w: conflict check failed: %w", ErrInternal, err)
		}
		if conflict != nil {
			return &ConflictError{Conflict: conflict}
		}

		appt := &domain.Appointment{
			UnitID:          req.UnitID,
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ClientBirthDate: req.ClientBirthDate,
			StartAt:         req.StartAt,
			EndAt:           endAt,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    servicePrice,
			Notes:           req.Notes,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				// Гонку поймал exclusion constraint, а не предварительная проверка
				return &ConflictError{Conflict: &domain.Conflict{
					Kind:  domain.ConflictAppointment,
					Label: "другая запись",
					Start: req.StartAt,
					End:   endAt,
				}}
			}
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		var conflictErr *ConflictError
		switch {
		case errors.As(err, &conflictErr):
			uc.logger.Warn("CreateAppointment: slot conflict for professional=%d: %s", req.ProfessionalID, conflictErr.Conflict.Label)
		case errors.Is(err, ErrUnitClosed), errors.Is(err, ErrOutsideWorkingHours), errors.Is(err, ErrInvalidInput):
			uc.logger.Warn("CreateAppointment: rejected for unit=%d: %v", req.UnitID, err)
		default:
			uc.logger.Error("CreateAppointment: transaction failed for unit=%d: %v", req.UnitID, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d for unit=%d", created.ID, req.UnitID)
	return fromDomain(created), nil
}

// ensureWithinWorkingHours проверяет, что юнит открыт в указанную дату
// и слот целиком лежит внутри рабочих часов
func (uc *UseCase) ensureWithinWorkingHours(ctx context.Context, unitID int64, startAt, endAt time.Time) error {
	day, err := uc.availability.Resolve(ctx, unitID, startAt)
	if err != nil {
		return fmt.Errorf("%w: availability resolution failed: %w", ErrInternal, err)
	}

	if !day.IsOpen || day.OpenTime == nil || day.CloseTime == nil {
		if day.HolidayLabel != nil {
			return fmt.Errorf("%w: %s", ErrUnitClosed, *day.HolidayLabel)
		}
		return ErrUnitClosed
	}

	slotStart := types.NewTimeString(startAt)
	slotEnd := types.NewTimeString(endAt)

	if slotStart.IsBefore(*day.OpenTime) || slotEnd.IsAfter(*day.CloseTime) {
		return fmt.Errorf("%w: slot %s-%s is outside %s-%s",
			ErrOutsideWorkingHours, slotStart, slotEnd, *day.OpenTime, *day.CloseTime)
	}

	return nil
}
