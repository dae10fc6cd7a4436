package list_unit_cancellations

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const (
	msgInvalidUnitID = "некорректный ID юнита"
	msgInvalidPeriod = "некорректный период выборки"
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

// Handle GET /api/v1/units/{unitId}/cancellations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{id}/cancellations - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	from, to, err := parsePeriod(r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /units/{id}/cancellations - Invalid period: unit_id=%d, error=%v", unitID, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	records, err := h.service.Cancellations(r.Context(), unitID, from, to)
	if err != nil {
		h.logger.Error("GET /units/{id}/cancellations - Failed to list cancellations: unit_id=%d, error=%v",
			unitID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /units/{id}/cancellations - Retrieved %d records: unit_id=%d", len(records), unitID)
	handlers.RespondJSON(w, http.StatusOK, fromDomainRecords(records))
}

// parsePeriod разбирает обязательные startDate/endDate (YYYY-MM-DD)
// Конец периода включительно: выборка идёт по границе следующего дня
func parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	from, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to.Add(24 * time.Hour), nil
}
