package domain

// Default cancellation policy values
// Применяются, когда у юнита нет настроенной политики:
// отмена никогда не блокируется отсутствием конфигурации
const (
	DefaultGracePeriodMinutes = 1440 // 24 часа
	DefaultLateFeePercent     = 0
	DefaultNoShowFeePercent   = 0
)

// Business validation constants
const (
	MaxNotesLength  = 500
	MaxReasonLength = 500
)

// PaymentMethodCourtesy метод оплаты "courtesy": завершение без выручки,
// цена принудительно обнуляется, причина дописывается в заметки
const PaymentMethodCourtesy = "courtesy"

// DefaultDeletionReason причина удаления по умолчанию, если не указана
const DefaultDeletionReason = "unspecified"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses список допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ValidCancellationSources список допустимых источников отмены
var ValidCancellationSources = []CancellationSource{
	SourceManual,
	SourceAutomated,
	SourceNoShow,
}
