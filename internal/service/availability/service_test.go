package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// stubScheduleRepo управляемый репозиторий расписания для тестов
type stubScheduleRepo struct {
	holiday  *domain.HolidayOverride
	hours    *domain.WeekdayHours
	defaults *domain.UnitDefaultHours
}

func (s *stubScheduleRepo) GetHolidayOverride(_ context.Context, _ int64, _ time.Time) (*domain.HolidayOverride, error) {
	if s.holiday == nil {
		return nil, scheduleRepo.ErrHolidayNotFound
	}
	return s.holiday, nil
}

func (s *stubScheduleRepo) GetWeekdayHours(_ context.Context, _ int64, _ time.Weekday) (*domain.WeekdayHours, error) {
	if s.hours == nil {
		return nil, scheduleRepo.ErrWeekdayHoursNotFound
	}
	return s.hours, nil
}

func (s *stubScheduleRepo) GetUnitDefaultHours(_ context.Context, _ int64) (*domain.UnitDefaultHours, error) {
	if s.defaults == nil {
		return nil, scheduleRepo.ErrDefaultHoursNotFound
	}
	return s.defaults, nil
}

// Понедельник
var testDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func TestResolve_HolidayOverridesWeeklyTemplate(t *testing.T) {
	repo := &stubScheduleRepo{
		holiday: &domain.HolidayOverride{UnitID: 1, Date: testDate, Label: "инвентаризация"},
		hours: &domain.WeekdayHours{
			UnitID:    1,
			Weekday:   int(time.Monday),
			IsOpen:    true,
			OpenTime:  ptr.Ptr(types.TimeString("09:00")),
			CloseTime: ptr.Ptr(types.TimeString("18:00")),
		},
	}
	svc := NewService(repo, nopLogger{})

	day, err := svc.Resolve(context.Background(), 1, testDate)
	require.NoError(t, err)

	assert.False(t, day.IsOpen)
	require.NotNil(t, day.HolidayLabel)
	assert.Equal(t, "инвентаризация", *day.HolidayLabel)
	assert.Nil(t, day.OpenTime)
}

func TestResolve_WeekdayHours(t *testing.T) {
	repo := &stubScheduleRepo{
		hours: &domain.WeekdayHours{
			UnitID:    1,
			Weekday:   int(time.Monday),
			IsOpen:    true,
			OpenTime:  ptr.Ptr(types.TimeString("09:00")),
			CloseTime: ptr.Ptr(types.TimeString("18:00")),
		},
	}
	svc := NewService(repo, nopLogger{})

	day, err := svc.Resolve(context.Background(), 1, testDate)
	require.NoError(t, err)

	assert.True(t, day.IsOpen)
	assert.Equal(t, types.TimeString("09:00"), *day.OpenTime)
	assert.Equal(t, types.TimeString("18:00"), *day.CloseTime)
	assert.Nil(t, day.HolidayLabel)
}

func TestResolve_ClosedWeekday(t *testing.T) {
	repo := &stubScheduleRepo{
		hours: &domain.WeekdayHours{UnitID: 1, Weekday: int(time.Monday), IsOpen: false},
		defaults: &domain.UnitDefaultHours{
			UnitID:    1,
			OpenTime:  "10:00",
			CloseTime: "20:00",
		},
	}
	svc := NewService(repo, nopLogger{})

	day, err := svc.Resolve(context.Background(), 1, testDate)
	require.NoError(t, err)

	// Явно закрытый день не проваливается в дефолтные часы
	assert.False(t, day.IsOpen)
}

func TestResolve_FallsBackToDefaultHours(t *testing.T) {
	repo := &stubScheduleRepo{
		defaults: &domain.UnitDefaultHours{
			UnitID:    1,
			OpenTime:  "10:00",
			CloseTime: "20:00",
		},
	}
	svc := NewService(repo, nopLogger{})

	day, err := svc.Resolve(context.Background(), 1, testDate)
	require.NoError(t, err)

	assert.True(t, day.IsOpen)
	assert.Equal(t, types.TimeString("10:00"), *day.OpenTime)
	assert.Equal(t, types.TimeString("20:00"), *day.CloseTime)
}

func TestResolve_NoConfigurationMeansClosed(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, nopLogger{})

	day, err := svc.Resolve(context.Background(), 1, testDate)
	require.NoError(t, err)

	assert.False(t, day.IsOpen)
}

func TestResolveBreak(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, nopLogger{})

	// Перерыв включен, обе границы заданы
	professional := &staffservice.Professional{
		ID:                1,
		LunchBreakEnabled: true,
		LunchBreakStart:   ptr.Ptr(types.TimeString("13:00")),
		LunchBreakEnd:     ptr.Ptr(types.TimeString("14:00")),
	}
	breakWindow := svc.ResolveBreak(professional)
	require.NotNil(t, breakWindow)
	assert.Equal(t, types.TimeString("13:00"), breakWindow.Start)
	assert.Equal(t, types.TimeString("14:00"), breakWindow.End)

	// Перерыв выключен
	professional.LunchBreakEnabled = false
	assert.Nil(t, svc.ResolveBreak(professional))

	// Границы не заданы
	professional.LunchBreakEnabled = true
	professional.LunchBreakEnd = nil
	assert.Nil(t, svc.ResolveBreak(professional))

	assert.Nil(t, svc.ResolveBreak(nil))
}
