package staffservice

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// Professional модель мастера из StaffService
type Professional struct {
	ID     int64  `json:"id"`
	UnitID int64  `json:"unit_id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`

	// Конфигурация обеденного перерыва (ежедневное повторяющееся окно)
	LunchBreakEnabled bool              `json:"lunch_break_enabled"`
	LunchBreakStart   *types.TimeString `json:"lunch_break_start,omitempty"`
	LunchBreakEnd     *types.TimeString `json:"lunch_break_end,omitempty"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
