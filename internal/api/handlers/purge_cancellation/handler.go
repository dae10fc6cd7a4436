package purge_cancellation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/audit"
)

const (
	msgInvalidRecordID = "некорректный ID записи истории"
	msgRecordNotFound  = "запись истории не найдена"
)

type Handler struct {
	service AuditService
	logger  Logger
}

func NewHandler(service AuditService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/cancellations/{recordId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["recordId"])
	if err != nil {
		h.logger.Warn("DELETE /cancellations/{id} - Invalid record ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRecordID)
		return
	}

	if err := h.service.PurgeCancellation(r.Context(), recordID); err != nil {
		switch {
		case errors.Is(err, audit.ErrRecordNotFound):
			h.logger.Warn("DELETE /cancellations/{id} - Record not found: record_id=%s", recordID)
			handlers.RespondNotFound(w, msgRecordNotFound)

		default:
			h.logger.Error("DELETE /cancellations/{id} - Failed to purge: record_id=%s, error=%v",
				recordID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cancellations/{id} - Record purged successfully: record_id=%s", recordID)
	handlers.RespondNoContent(w)
}
