package create_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidStartAt          = "некорректный формат времени начала, ожидается ISO 8601"
	msgInvalidInput            = "некорректные данные запроса"
	msgProfessionalNotFound    = "мастер не найден"
	msgProfessionalInactive    = "мастер недоступен для записи"
	msgServiceNotFound         = "услуга не найдена"
	msgUnitClosed              = "юнит закрыт в выбранную дату"
	msgOutsideWorkingHours     = "слот выходит за рабочие часы"
	msgSlotConflictWithBreak   = "слот пересекается с перерывом мастера"
	msgSlotConflictWithBooking = "слот пересекается с другой записью"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createAppointment.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /appointments - Slot conflict: professional_id=%d, blocking=%s",
				req.ProfessionalID, conflictErr.Conflict.Label)
			handlers.RespondError(w, http.StatusConflict, conflictMessage(conflictErr))

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: unit_id=%d, professional_id=%d",
				req.UnitID, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalInactive):
			h.logger.Warn("POST /appointments - Professional inactive: professional_id=%d", req.ProfessionalID)
			handlers.RespondBadRequest(w, msgProfessionalInactive)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: unit_id=%d, service_id=%d",
				req.UnitID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrUnitClosed):
			h.logger.Warn("POST /appointments - Unit closed: unit_id=%d, start_at=%s", req.UnitID, req.StartAt)
			handlers.RespondBadRequest(w, msgUnitClosed)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: unit_id=%d, start_at=%s", req.UnitID, req.StartAt)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: unit_id=%d, error=%v",
				req.UnitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, unit_id=%d, professional_id=%d",
		result.ID, req.UnitID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// conflictMessage возвращает сообщение с меткой блокирующей сущности
func conflictMessage(err *createAppointment.ConflictError) string {
	if err.Conflict.IsBreak() {
		return fmt.Sprintf("%s (%s)", msgSlotConflictWithBreak, err.Conflict.Label)
	}
	return fmt.Sprintf("%s (%s)", msgSlotConflictWithBooking, err.Conflict.Label)
}
