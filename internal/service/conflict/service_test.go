package conflict

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// stubAppointmentRepo имитирует хранилище: возвращает записи,
// пересекающиеся с запрошенным интервалом, по полуоткрытой логике
type stubAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (s *stubAppointmentRepo) ListActiveOverlapping(_ context.Context, professionalID int64, start, end time.Time, excludeID *int64) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range s.appointments {
		if a.ProfessionalID != professionalID || !a.IsActive() {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if domain.Overlaps(a.StartAt, a.EndAt, start, end) {
			result = append(result, a)
		}
	}
	return result, nil
}

type stubStaffClient struct {
	professional *staffservice.Professional
}

func (s *stubStaffClient) GetProfessional(_ context.Context, _, _ int64) (*staffservice.Professional, error) {
	if s.professional == nil {
		return nil, staffservice.ErrProfessionalNotFound
	}
	return s.professional, nil
}

type stubBreakResolver struct {
	window *domain.BreakWindow
}

func (s *stubBreakResolver) ResolveBreak(_ *staffservice.Professional) *domain.BreakWindow {
	return s.window
}

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func activeProfessional() *staffservice.Professional {
	return &staffservice.Professional{ID: 7, UnitID: 1, Name: "Анна", Active: true}
}

func TestCheck_FreeSlot(t *testing.T) {
	svc := NewService(&stubAppointmentRepo{}, &stubStaffClient{professional: activeProfessional()}, &stubBreakResolver{}, nopLogger{})

	conflict, err := svc.Check(context.Background(), 1, 7, at(10, 0), at(10, 30), nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestCheck_OverlappingAppointment(t *testing.T) {
	existing := &domain.Appointment{
		ID:             42,
		ProfessionalID: 7,
		ClientName:     "Иван Петров",
		StartAt:        at(10, 0),
		EndAt:          at(10, 30),
		Status:         domain.StatusConfirmed,
	}
	svc := NewService(
		&stubAppointmentRepo{appointments: []*domain.Appointment{existing}},
		&stubStaffClient{professional: activeProfessional()},
		&stubBreakResolver{},
		nopLogger{},
	)

	// 10:15-10:45 пересекается с 10:00-10:30
	conflict, err := svc.Check(context.Background(), 1, 7, at(10, 15), at(10, 45), nil)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.ConflictAppointment, conflict.Kind)
	require.NotNil(t, conflict.AppointmentID)
	assert.Equal(t, int64(42), *conflict.AppointmentID)
	assert.Equal(t, "Иван Петров", conflict.Label)
}

func TestCheck_TouchingEndpointsDoNotConflict(t *testing.T) {
	existing := &domain.Appointment{
		ID:             42,
		ProfessionalID: 7,
		ClientName:     "Иван Петров",
		StartAt:        at(10, 0),
		EndAt:          at(10, 30),
		Status:         domain.StatusConfirmed,
	}
	svc := NewService(
		&stubAppointmentRepo{appointments: []*domain.Appointment{existing}},
		&stubStaffClient{professional: activeProfessional()},
		&stubBreakResolver{},
		nopLogger{},
	)

	// 10:30-11:00 начинается ровно в конце существующей записи
	conflict, err := svc.Check(context.Background(), 1, 7, at(10, 30), at(11, 0), nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestCheck_CancelledAppointmentFreesSlot(t *testing.T) {
	cancelled := &domain.Appointment{
		ID:             42,
		ProfessionalID: 7,
		ClientName:     "Иван Петров",
		StartAt:        at(10, 0),
		EndAt:          at(10, 30),
		Status:         domain.StatusCancelled,
	}
	svc := NewService(
		&stubAppointmentRepo{appointments: []*domain.Appointment{cancelled}},
		&stubStaffClient{professional: activeProfessional()},
		&stubBreakResolver{},
		nopLogger{},
	)

	conflict, err := svc.Check(context.Background(), 1, 7, at(10, 0), at(10, 30), nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestCheck_ExcludesOwnID(t *testing.T) {
	existing := &domain.Appointment{
		ID:             42,
		ProfessionalID: 7,
		ClientName:     "Иван Петров",
		StartAt:        at(10, 0),
		EndAt:          at(10, 30),
		Status:         domain.StatusConfirmed,
	}
	svc := NewService(
		&stubAppointmentRepo{appointments: []*domain.Appointment{existing}},
		&stubStaffClient{professional: activeProfessional()},
		&stubBreakResolver{},
		nopLogger{},
	)

	// Перенос самой записи на пересекающийся слот конфликтом не считается
	conflict, err := svc.Check(context.Background(), 1, 7, at(10, 15), at(10, 45), ptr.Ptr(int64(42)))
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestCheck_BreakBlocksSlot(t *testing.T) {
	svc := NewService(
		&stubAppointmentRepo{},
		&stubStaffClient{professional: activeProfessional()},
		&stubBreakResolver{window: &domain.BreakWindow{Start: "13:00", End: "14:00"}},
		nopLogger{},
	)

	conflict, err := svc.Check(context.Background(), 1, 7, at(13, 30), at(14, 30), nil)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.ConflictBreak, conflict.Kind)
	assert.True(t, conflict.IsBreak())
	assert.Nil(t, conflict.AppointmentID)
	assert.Equal(t, "перерыв 13:00-14:00", conflict.Label)
	assert.Equal(t, at(13, 0), conflict.Start)
	assert.Equal(t, at(14, 0), conflict.End)
}

func TestCheck_SlotTouchingBreakDoesNotConflict(t *testing.T) {
	svc := NewService(
		&stubAppointmentRepo{},
		&stubStaffClient{professional: activeProfessional()},
		&stubBreakResolver{window: &domain.BreakWindow{Start: "13:00", End: "14:00"}},
		nopLogger{},
	)

	// Слот заканчивается ровно в начале перерыва
	conflict, err := svc.Check(context.Background(), 1, 7, at(12, 0), at(13, 0), nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// Слот начинается ровно в конце перерыва
	conflict, err = svc.Check(context.Background(), 1, 7, at(14, 0), at(15, 0), nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestCheck_InvalidInterval(t *testing.T) {
	svc := NewService(&stubAppointmentRepo{}, &stubStaffClient{professional: activeProfessional()}, &stubBreakResolver{}, nopLogger{})

	_, err := svc.Check(context.Background(), 1, 7, at(10, 30), at(10, 0), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = svc.Check(context.Background(), 1, 7, at(10, 0), at(10, 0), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	// Интервал через границу дня
	_, err = svc.Check(context.Background(), 1, 7, at(23, 30), at(23, 30).Add(time.Hour), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCheck_ProfessionalNotFound(t *testing.T) {
	svc := NewService(&stubAppointmentRepo{}, &stubStaffClient{}, &stubBreakResolver{}, nopLogger{})

	_, err := svc.Check(context.Background(), 1, 7, at(10, 0), at(10, 30), nil)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestCheck_AppointmentConflictChecksBreakFirst(t *testing.T) {
	existing := &domain.Appointment{
		ID:             42,
		ProfessionalID: 7,
		ClientName:     "Иван Петров",
		StartAt:        at(13, 0),
		EndAt:          at(14, 0),
		Status:         domain.StatusConfirmed,
	}
	svc := NewService(
		&stubAppointmentRepo{appointments: []*domain.Appointment{existing}},
		&stubStaffClient{professional: activeProfessional()},
		&stubBreakResolver{window: &domain.BreakWindow{Start: "13:00", End: "14:00"}},
		nopLogger{},
	)

	// При одновременном пересечении с перерывом и записью выигрывает перерыв
	conflict, err := svc.Check(context.Background(), 1, 7, at(13, 0), at(13, 30), nil)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, domain.ConflictBreak, conflict.Kind)
}
