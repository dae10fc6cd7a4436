package schedule

import "errors"

var (
	// ErrWeekdayHoursNotFound возвращается, когда для дня недели нет строки расписания
	ErrWeekdayHoursNotFound = errors.New("schedule.repository: weekday hours not found")

	// ErrHolidayNotFound возвращается, когда на дату нет праздничного исключения
	ErrHolidayNotFound = errors.New("schedule.repository: holiday override not found")

	// ErrDefaultHoursNotFound возвращается, когда у юнита нет дефолтных рабочих часов
	ErrDefaultHoursNotFound = errors.New("schedule.repository: unit default hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
