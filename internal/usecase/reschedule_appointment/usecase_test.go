package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubApptRepo struct {
	appt *domain.Appointment

	updateErr error
	updated   *domain.Appointment
}

func (s *stubApptRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if s.appt == nil || s.appt.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *s.appt
	return &copied, nil
}

func (s *stubApptRepo) Update(_ context.Context, appt *domain.Appointment) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	copied := *appt
	s.updated = &copied
	// Следующий GetByID видит сохранённое состояние
	s.appt = &copied
	return nil
}

type stubAvailability struct {
	day *domain.DayAvailability
}

func (s *stubAvailability) Resolve(_ context.Context, _ int64, _ time.Time) (*domain.DayAvailability, error) {
	return s.day, nil
}

type stubConflictChecker struct {
	conflict *domain.Conflict

	calls     int
	excludeID *int64
}

func (s *stubConflictChecker) Check(_ context.Context, _, _ int64, _, _ time.Time, excludeID *int64) (*domain.Conflict, error) {
	s.calls++
	s.excludeID = excludeID
	return s.conflict, nil
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

type stubCatalogClient struct {
	service *catalogservice.Service
}

func (s *stubCatalogClient) GetService(_ context.Context, _, _ int64) (*catalogservice.Service, error) {
	if s.service == nil {
		return nil, catalogservice.ErrServiceNotFound
	}
	return s.service, nil
}

type testDeps struct {
	repo         *stubApptRepo
	availability *stubAvailability
	conflicts    *stubConflictChecker
	staff        *stubStaffClient
	catalog      *stubCatalogClient
}

func defaultDeps() *testDeps {
	open := types.TimeString("09:00")
	close := types.TimeString("18:00")
	return &testDeps{
		repo: &stubApptRepo{appt: &domain.Appointment{
			ID:             10,
			UnitID:         1,
			ProfessionalID: 7,
			ServiceID:      3,
			ClientName:     "Иван Петров",
			StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			EndAt:          time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC),
			Status:         domain.StatusPending,
			ServiceName:    "Стрижка",
			ServicePrice:   1000,
		}},
		availability: &stubAvailability{day: &domain.DayAvailability{
			IsOpen:    true,
			OpenTime:  &open,
			CloseTime: &close,
		}},
		conflicts: &stubConflictChecker{},
		staff: &stubStaffClient{professional: &staffservice.Professional{
			ID: 8, UnitID: 1, Name: "Мария", Active: true,
		}},
		catalog: &stubCatalogClient{service: &catalogservice.Service{
			ID: 4, UnitID: 1, Name: "Окрашивание", DurationMinutes: 90, Price: ptr.Ptr(float64(3500)),
		}},
	}
}

func newTestUseCase(deps *testDeps) *UseCase {
	return NewUseCase(
		deps.repo,
		deps.availability,
		deps.conflicts,
		deps.staff,
		deps.catalog,
		fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_MoveStartKeepsDuration(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	newStart := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, StartAt: &newStart})
	require.NoError(t, err)

	assert.Equal(t, newStart, resp.StartAt)
	// Длительность 30 минут сохраняется
	assert.Equal(t, newStart.Add(30*time.Minute), resp.EndAt)
	assert.Equal(t, "pending", resp.Status)

	// Собственный id исключается из поиска конфликтов
	require.NotNil(t, deps.conflicts.excludeID)
	assert.Equal(t, int64(10), *deps.conflicts.excludeID)
}

func TestExecute_ServiceChangeRecomputesEndAndPrice(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, ServiceID: ptr.Ptr(int64(4))})
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.ServiceID)
	assert.Equal(t, "Окрашивание", resp.ServiceName)
	assert.Equal(t, float64(3500), resp.ServicePrice)
	// Новая длительность 90 минут от прежнего времени начала
	assert.Equal(t, time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC), resp.EndAt)
}

func TestExecute_RepeatedRescheduleIsIdempotent(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	newStart := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	req := &Request{
		AppointmentID: 10,
		ServiceID:     ptr.Ptr(int64(4)),
		StartAt:       &newStart,
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Повторный перенос на ту же услугу и то же время ничего не сдвигает
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.StartAt, second.StartAt)
	assert.Equal(t, first.EndAt, second.EndAt)
	assert.Equal(t, first.ServicePrice, second.ServicePrice)
	assert.Equal(t, newStart.Add(90*time.Minute), second.EndAt)
}

func TestExecute_RepeatedMoveKeepsDuration(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	newStart := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	req := &Request{AppointmentID: 10, StartAt: &newStart}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Длительность выводится из сохранённых границ и не дрейфует
	assert.Equal(t, first.EndAt, second.EndAt)
	assert.Equal(t, newStart.Add(30*time.Minute), second.EndAt)
}

func TestExecute_ClientFieldsOnlySkipAvailabilityCheck(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 10,
		ClientName:    ptr.Ptr("Пётр Иванов"),
		Notes:         ptr.Ptr("перенос по телефону"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Пётр Иванов", resp.ClientName)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "перенос по телефону", *resp.Notes)
	// Слот не менялся, проверка конфликтов не выполняется
	assert.Equal(t, 0, deps.conflicts.calls)
}

func TestExecute_ProfessionalChangeValidated(t *testing.T) {
	deps := defaultDeps()
	deps.staff.professional = nil
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, ProfessionalID: ptr.Ptr(int64(8))})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Nil(t, deps.repo.updated)
}

func TestExecute_InactiveProfessionalRejected(t *testing.T) {
	deps := defaultDeps()
	deps.staff.professional.Active = false
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, ProfessionalID: ptr.Ptr(int64(8))})
	assert.ErrorIs(t, err, ErrProfessionalInactive)
}

func TestExecute_ConflictOnNewSlot(t *testing.T) {
	deps := defaultDeps()
	deps.conflicts.conflict = &domain.Conflict{
		Kind:          domain.ConflictAppointment,
		AppointmentID: ptr.Ptr(int64(42)),
		Label:         "Мария Сидорова",
	}
	uc := newTestUseCase(deps)

	newStart := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, StartAt: &newStart})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "Мария Сидорова", conflictErr.Conflict.Label)
	assert.Nil(t, deps.repo.updated)
}

func TestExecute_NewSlotOutsideWorkingHours(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	newStart := time.Date(2026, 3, 11, 17, 45, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, StartAt: &newStart})
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_RaceCaughtByConstraint(t *testing.T) {
	deps := defaultDeps()
	deps.repo.updateErr = appointmentRepo.ErrSlotTaken
	uc := newTestUseCase(deps)

	newStart := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, StartAt: &newStart})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "другая запись", conflictErr.Conflict.Label)
}

func TestExecute_CompletedNotEditable(t *testing.T) {
	deps := defaultDeps()
	deps.repo.appt.Status = domain.StatusCompleted
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Notes: ptr.Ptr("попытка правки")})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestExecute_CancelledNotEditable(t *testing.T) {
	deps := defaultDeps()
	deps.repo.appt.Status = domain.StatusCancelled
	uc := newTestUseCase(deps)

	newStart := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, StartAt: &newStart})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestExecute_NotFound(t *testing.T) {
	deps := defaultDeps()
	deps.repo.appt = nil
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Notes: ptr.Ptr("x")})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_EmptyRequestRejected(t *testing.T) {
	uc := newTestUseCase(defaultDeps())

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
