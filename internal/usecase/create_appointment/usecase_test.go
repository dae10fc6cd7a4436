package create_appointment

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

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubApptRepo struct {
	failWith error
	created  *domain.Appointment
}

func (s *stubApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	copied := *appt
	copied.ID = 100
	s.created = &copied
	return &copied, nil
}

type stubAvailability struct {
	day *domain.DayAvailability
}

func (s *stubAvailability) Resolve(_ context.Context, _ int64, _ time.Time) (*domain.DayAvailability, error) {
	return s.day, nil
}

type stubConflictChecker struct {
	conflict *domain.Conflict
}

func (s *stubConflictChecker) Check(_ context.Context, _, _ int64, _, _ time.Time, _ *int64) (*domain.Conflict, error) {
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

func openDay(open, close types.TimeString) *domain.DayAvailability {
	return &domain.DayAvailability{
		IsOpen:    true,
		OpenTime:  &open,
		CloseTime: &close,
	}
}

func validRequest() *Request {
	return &Request{
		UnitID:         1,
		ProfessionalID: 7,
		ServiceID:      3,
		StartAt:        time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		ClientName:     "Иван Петров",
	}
}

type testDeps struct {
	repo         *stubApptRepo
	availability *stubAvailability
	conflicts    *stubConflictChecker
	staff        *stubStaffClient
	catalog      *stubCatalogClient
}

func defaultDeps() *testDeps {
	return &testDeps{
		repo:         &stubApptRepo{},
		availability: &stubAvailability{day: openDay("09:00", "18:00")},
		conflicts:    &stubConflictChecker{},
		staff: &stubStaffClient{professional: &staffservice.Professional{
			ID: 7, UnitID: 1, Name: "Анна", Active: true,
		}},
		catalog: &stubCatalogClient{service: &catalogservice.Service{
			ID: 3, UnitID: 1, Name: "Стрижка", DurationMinutes: 30, Price: ptr.Ptr(float64(1000)),
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
		fixedTime{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, float64(1000), resp.ServicePrice)
	// Длительность услуги определяет время окончания
	assert.Equal(t, time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC), resp.EndAt)

	require.NotNil(t, deps.repo.created)
	assert.Equal(t, domain.StatusPending, deps.repo.created.Status)
}

func TestExecute_NilPriceSnapshotsZero(t *testing.T) {
	deps := defaultDeps()
	deps.catalog.service.Price = nil
	uc := newTestUseCase(deps)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, float64(0), resp.ServicePrice)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	deps := defaultDeps()
	deps.staff.professional = nil
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ProfessionalInactive(t *testing.T) {
	deps := defaultDeps()
	deps.staff.professional.Active = false
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalInactive)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	deps := defaultDeps()
	deps.catalog.service = nil
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UnitClosed(t *testing.T) {
	deps := defaultDeps()
	deps.availability.day = &domain.DayAvailability{IsOpen: false}
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnitClosed)
	assert.Nil(t, deps.repo.created)
}

func TestExecute_HolidayClosure(t *testing.T) {
	deps := defaultDeps()
	deps.availability.day = &domain.DayAvailability{
		IsOpen:       false,
		HolidayLabel: ptr.Ptr("инвентаризация"),
	}
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrUnitClosed)
	assert.Contains(t, err.Error(), "инвентаризация")
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	// Слот 17:45-18:15 выходит за закрытие в 18:00
	req := validRequest()
	req.StartAt = time.Date(2026, 3, 10, 17, 45, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_SlotEndingAtCloseIsAllowed(t *testing.T) {
	deps := defaultDeps()
	uc := newTestUseCase(deps)

	// Слот 17:30-18:00 заканчивается ровно в закрытие
	req := validRequest()
	req.StartAt = time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ConflictReported(t *testing.T) {
	deps := defaultDeps()
	deps.conflicts.conflict = &domain.Conflict{
		Kind:          domain.ConflictAppointment,
		AppointmentID: ptr.Ptr(int64(42)),
		Label:         "Мария Сидорова",
	}
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), validRequest())

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "Мария Сидорова", conflictErr.Conflict.Label)
	assert.Nil(t, deps.repo.created)
}

func TestExecute_RaceCaughtByConstraint(t *testing.T) {
	deps := defaultDeps()
	deps.repo.failWith = appointmentRepo.ErrSlotTaken
	uc := newTestUseCase(deps)

	_, err := uc.Execute(context.Background(), validRequest())

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, domain.ConflictAppointment, conflictErr.Conflict.Kind)
	assert.Equal(t, "другая запись", conflictErr.Conflict.Label)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(defaultDeps())

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero unit", func(r *Request) { r.UnitID = 0 }},
		{"zero professional", func(r *Request) { r.ProfessionalID = 0 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero start", func(r *Request) { r.StartAt = time.Time{} }},
		{"blank client name", func(r *Request) { r.ClientName = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
