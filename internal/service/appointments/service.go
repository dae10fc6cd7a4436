package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// Service сервис чтения записей на приём
// Мутации идут через use cases (create/reschedule/transition/delete),
// здесь только read-поверхность для UI и предварительной валидации
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetUnitAppointments получает записи юнита с гибкой фильтрацией
// Поддерживает фильтрацию по мастеру, периоду, статусу и включению отменённых
func (s *Service) GetUnitAppointments(ctx context.Context, req *models.GetUnitAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetUnitAppointments: fetching appointments for unit=%d", req.UnitID)
	if req.ProfessionalID != nil {
		logMsg += fmt.Sprintf(", professional=%d", *req.ProfessionalID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetUnitAppointments: invalid filter for unit=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByUnitWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUnitAppointments: repository error for unit=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: GetUnitAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUnitAppointments: successfully fetched %d appointments for unit=%d",
		len(appointments), req.UnitID)
	return models.FromDomainAppointmentList(appointments), nil
}
