package reschedule_appointment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidAppointmentID    = "некорректный ID записи"
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidStartAt          = "некорректный формат времени начала, ожидается ISO 8601"
	msgInvalidInput            = "некорректные данные запроса"
	msgAppointmentNotFound     = "запись не найдена"
	msgNotEditable             = "запись нельзя редактировать в текущем статусе"
	msgProfessionalNotFound    = "мастер не найден"
	msgProfessionalInactive    = "мастер недоступен для записи"
	msgServiceNotFound         = "услуга не найдена"
	msgUnitClosed              = "юнит закрыт в выбранную дату"
	msgOutsideWorkingHours     = "слот выходит за рабочие часы"
	msgSlotConflictWithBreak   = "слот пересекается с перерывом мастера"
	msgSlotConflictWithBooking = "слот пересекается с другой записью"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *rescheduleAppointment.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PATCH /appointments/{id} - Slot conflict: appointment_id=%d, blocking=%s",
				appointmentID, conflictErr.Conflict.Label)
			handlers.RespondError(w, http.StatusConflict, conflictMessage(conflictErr))

		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, rescheduleAppointment.ErrNotEditable):
			h.logger.Warn("PATCH /appointments/{id} - Not editable: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotEditable)

		case errors.Is(err, rescheduleAppointment.ErrProfessionalNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Professional not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, rescheduleAppointment.ErrProfessionalInactive):
			h.logger.Warn("PATCH /appointments/{id} - Professional inactive: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgProfessionalInactive)

		case errors.Is(err, rescheduleAppointment.ErrServiceNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Service not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, rescheduleAppointment.ErrUnitClosed):
			h.logger.Warn("PATCH /appointments/{id} - Unit closed: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgUnitClosed)

		case errors.Is(err, rescheduleAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("PATCH /appointments/{id} - Outside working hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to reschedule: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// conflictMessage возвращает сообщение с меткой блокирующей сущности
func conflictMessage(err *rescheduleAppointment.ConflictError) string {
	if err.Conflict.IsBreak() {
		return fmt.Sprintf("%s (%s)", msgSlotConflictWithBreak, err.Conflict.Label)
	}
	return fmt.Sprintf("%s (%s)", msgSlotConflictWithBooking, err.Conflict.Label)
}
