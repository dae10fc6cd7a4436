package list_unit_cancellations

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CancellationRecordResponse HTTP response model
type CancellationRecordResponse struct {
	ID               string    `json:"id"`
	AppointmentID    int64     `json:"appointmentId"`
	UnitID           int64     `json:"unitId"`
	ScheduledAt      time.Time `json:"scheduledAt"`
	CancelledAt      time.Time `json:"cancelledAt"`
	MinutesBefore    int       `json:"minutesBefore"`
	IsLate           bool      `json:"isLate"`
	IsNoShow         bool      `json:"isNoShow"`
	Source           string    `json:"source"`
	ProfessionalName string    `json:"professionalName"`
	ServiceName      string    `json:"serviceName"`
	ClientName       string    `json:"clientName"`
	FeeAmount        float64   `json:"feeAmount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CancellationListResponse ответ со списком записей истории отмен
type CancellationListResponse struct {
	Cancellations []CancellationRecordResponse `json:"cancellations"`
}

// fromDomainRecords конвертирует список domain моделей в DTO
func fromDomainRecords(records []*domain.CancellationHistoryRecord) *CancellationListResponse {
	resp := &CancellationListResponse{
		Cancellations: make([]CancellationRecordResponse, 0, len(records)),
	}

	for _, rec := range records {
		if rec == nil {
			continue
		}
		resp.Cancellations = append(resp.Cancellations, CancellationRecordResponse{
			ID:               rec.ID.String(),
			AppointmentID:    rec.AppointmentID,
			UnitID:           rec.UnitID,
			ScheduledAt:      rec.ScheduledAt,
			CancelledAt:      rec.CancelledAt,
			MinutesBefore:    rec.MinutesBefore,
			IsLate:           rec.IsLate,
			IsNoShow:         rec.IsNoShow,
			Source:           string(rec.Source),
			ProfessionalName: rec.ProfessionalName,
			ServiceName:      rec.ServiceName,
			ClientName:       rec.ClientName,
			FeeAmount:        rec.FeeAmount,
			CreatedAt:        rec.CreatedAt,
		})
	}

	return resp
}
