package check_conflict

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/conflict"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidUnitID         = "некорректный параметр unitId"
	msgInvalidInterval       = "некорректный интервал, ожидается start и end в ISO 8601 в пределах одного дня"
	msgInvalidExcludeID      = "некорректный параметр excludeId"
	msgProfessionalNotFound  = "мастер не найден"
)

type Handler struct {
	service ConflictService
	logger  Logger
}

func NewHandler(service ConflictService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/conflicts?unitId=&start=&end=&excludeId=
// Read-only проверка для UI: настоящая гарантия отсутствия пересечений
// обеспечивается на вставке
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/conflicts - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	query := r.URL.Query()

	unitID, err := strconv.ParseInt(query.Get("unitId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/conflicts - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/conflicts - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	end, err := time.Parse(time.RFC3339, query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/conflicts - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	var excludeID *int64
	if v := query.Get("excludeId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/conflicts - Invalid exclude ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeID = &id
	}

	result, err := h.service.Check(r.Context(), unitID, professionalID, start, end, excludeID)
	if err != nil {
		switch {
		case errors.Is(err, conflict.ErrInvalidInterval):
			h.logger.Warn("GET /professionals/{id}/conflicts - Invalid interval: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, conflict.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/conflicts - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("GET /professionals/{id}/conflicts - Failed to check conflicts: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/conflicts - Checked: professional_id=%d, has_conflict=%t",
		professionalID, result != nil)
	handlers.RespondJSON(w, http.StatusOK, FromDomainConflict(result))
}
