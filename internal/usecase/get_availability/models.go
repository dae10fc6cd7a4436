package get_availability

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса доступности юнита на дату
type Request struct {
	UnitID int64
	Date   string // YYYY-MM-DD
}

// Response модель ответа с доступностью юнита
type Response struct {
	UnitID       int64   `json:"unitId"`
	Date         string  `json:"date"` // YYYY-MM-DD
	IsOpen       bool    `json:"isOpen"`
	OpenTime     *string `json:"openTime,omitempty"`  // "HH:MM"
	CloseTime    *string `json:"closeTime,omitempty"` // "HH:MM"
	HolidayLabel *string `json:"holidayLabel,omitempty"`
}

// fromDomain конвертирует доменную модель в response
func fromDomain(unitID int64, date string, day *domain.DayAvailability) *Response {
	resp := &Response{
		UnitID:       unitID,
		Date:         date,
		IsOpen:       day.IsOpen,
		HolidayLabel: day.HolidayLabel,
	}

	if day.OpenTime != nil {
		open := day.OpenTime.String()
		resp.OpenTime = &open
	}
	if day.CloseTime != nil {
		closeTime := day.CloseTime.String()
		resp.CloseTime = &closeTime
	}

	return resp
}
