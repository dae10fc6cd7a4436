package list_unit_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// parseQuery собирает фильтр из query-параметров:
// professionalId, startDate, endDate (YYYY-MM-DD), status, includeCancelled
func parseQuery(unitID int64, query url.Values) (*models.GetUnitAppointmentsRequest, error) {
	req := &models.GetUnitAppointmentsRequest{UnitID: unitID}

	if v := query.Get("professionalId"); v != "" {
		professionalID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ProfessionalID = &professionalID
	}

	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		// Конец периода включительно: фильтр работает по границе следующего дня
		endOfDay := endDate.Add(24 * time.Hour)
		req.EndDate = &endOfDay
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeCancelled"); v != "" {
		includeCancelled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
