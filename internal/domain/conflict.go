package domain

import "time"

// ConflictKind тип конфликта при проверке слота
type ConflictKind string

const (
	// ConflictBreak слот пересекается с окном перерыва мастера
	ConflictBreak ConflictKind = "break"
	// ConflictAppointment слот пересекается с существующей записью
	ConflictAppointment ConflictKind = "appointment"
)

// Conflict описывает, чем занят запрошенный слот
// Label достаточно для показа пользователю без дополнительных запросов:
// для перерыва - название перерыва, для записи - имя клиента
type Conflict struct {
	Kind          ConflictKind
	AppointmentID *int64 // заполнен только для Kind == ConflictAppointment
	Label         string
	Start         time.Time
	End           time.Time
}

// IsBreak returns true if the slot is blocked by the professional's break
func (c *Conflict) IsBreak() bool {
	return c.Kind == ConflictBreak
}

// Overlaps возвращает true, если полуоткрытые интервалы [aStart, aEnd) и
// [bStart, bEnd) пересекаются; касание границ пересечением не считается
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
