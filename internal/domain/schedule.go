package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// WeekdayHours одна строка недельного расписания юнита
// Инвариант: если IsOpen=false, границы не заданы; если IsOpen=true, OpenTime < CloseTime
type WeekdayHours struct {
	ID        int64
	UnitID    int64
	Weekday   int // 0 = воскресенье ... 6 = суббота, как time.Weekday
	IsOpen    bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HolidayOverride датированное исключение, принудительно закрывающее юнит
// Не более одного на пару (юнит, дата)
type HolidayOverride struct {
	ID        int64
	UnitID    int64
	Date      time.Time // только дата, время обнулено
	Label     string
	CreatedAt time.Time
}

// UnitDefaultHours грубая fallback-настройка рабочих часов юнита
// Используется, когда недельное расписание для дня не настроено
type UnitDefaultHours struct {
	UnitID    int64
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// DayAvailability результат разрешения доступности юнита на дату
type DayAvailability struct {
	IsOpen       bool
	OpenTime     *types.TimeString
	CloseTime    *types.TimeString
	HolidayLabel *string
}

// BreakWindow ежедневно повторяющееся окно перерыва мастера
type BreakWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps возвращает true, если окно перерыва пересекается с интервалом
// [start, end) того же календарного дня (сравнение по времени дня, полуоткрытые
// интервалы - касание границ пересечением не считается)
func (b BreakWindow) Overlaps(start, end types.TimeString) bool {
	return b.Start.IsBefore(end) && b.End.IsAfter(start)
}
