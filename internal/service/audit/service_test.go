package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	historyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/history"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// stubHistoryRepo управляемый репозиторий истории для тестов
type stubHistoryRepo struct {
	cancellation *domain.CancellationHistoryRecord
	deletion     *domain.DeletionAuditRecord
	records      []*domain.CancellationHistoryRecord
	deletedIDs   []uuid.UUID

	createErr error
	listErr   error
	deleteErr error
}

func (s *stubHistoryRepo) CreateCancellation(_ context.Context, rec *domain.CancellationHistoryRecord) (*domain.CancellationHistoryRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	s.cancellation = rec
	return rec, nil
}

func (s *stubHistoryRepo) CreateDeletionAudit(_ context.Context, rec *domain.DeletionAuditRecord) (*domain.DeletionAuditRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	s.deletion = rec
	return rec, nil
}

func (s *stubHistoryRepo) ListCancellationsByUnit(_ context.Context, _ int64, _, _ time.Time) ([]*domain.CancellationHistoryRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records, nil
}

func (s *stubHistoryRepo) DeleteCancellation(_ context.Context, id uuid.UUID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:             42,
		UnitID:         7,
		ProfessionalID: 3,
		ServiceID:      11,
		ServiceName:    "Диагностика",
		ServicePrice:   1500,
		ClientName:     "Пётр Сидоров",
		Status:         domain.StatusConfirmed,
		StartAt:        time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC),
		EndAt:          time.Date(2026, 4, 10, 13, 0, 0, 0, time.UTC),
	}
}

func TestRecordCancellation_SnapshotsAppointmentFields(t *testing.T) {
	repo := &stubHistoryRepo{}
	rec := NewRecorder(repo, nopLogger{})

	appt := testAppointment()
	cancelledAt := appt.StartAt.Add(-2 * time.Hour)
	timing := domain.CancellationTiming{MinutesBefore: 120, IsLate: true}

	created, err := rec.RecordCancellation(
		context.Background(), appt, "Иван Мастеров", cancelledAt, timing, 150, false, domain.SourceManual,
	)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, int64(42), created.AppointmentID)
	assert.Equal(t, int64(7), created.UnitID)
	assert.Equal(t, appt.StartAt, created.ScheduledAt)
	assert.Equal(t, cancelledAt, created.CancelledAt)
	assert.Equal(t, 120, created.MinutesBefore)
	assert.True(t, created.IsLate)
	assert.False(t, created.IsNoShow)
	assert.Equal(t, domain.SourceManual, created.Source)
	assert.Equal(t, "Иван Мастеров", created.ProfessionalName)
	assert.Equal(t, "Диагностика", created.ServiceName)
	assert.Equal(t, "Пётр Сидоров", created.ClientName)
	assert.Equal(t, 150.0, created.FeeAmount)
}

func TestRecordCancellation_WrapsRepositoryFailure(t *testing.T) {
	repo := &stubHistoryRepo{createErr: errors.New("connection reset")}
	rec := NewRecorder(repo, nopLogger{})

	_, err := rec.RecordCancellation(
		context.Background(), testAppointment(), "Иван Мастеров",
		time.Now(), domain.CancellationTiming{}, 0, false, domain.SourceManual,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordFailed)
}

func TestRecordDeletion_DefaultsEmptyReason(t *testing.T) {
	repo := &stubHistoryRepo{}
	rec := NewRecorder(repo, nopLogger{})

	created, err := rec.RecordDeletion(context.Background(), testAppointment(), 99, "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDeletionReason, created.Reason)
	assert.Equal(t, int64(99), created.ActorID)
	assert.Equal(t, domain.StatusConfirmed, created.OriginalStatus)
	assert.Equal(t, 1500.0, created.ServicePrice)
}

func TestCancellations_ReturnsRepositoryRecords(t *testing.T) {
	records := []*domain.CancellationHistoryRecord{
		{ID: uuid.New(), AppointmentID: 1, UnitID: 7},
		{ID: uuid.New(), AppointmentID: 2, UnitID: 7},
	}
	repo := &stubHistoryRepo{records: records}
	rec := NewRecorder(repo, nopLogger{})

	got, err := rec.Cancellations(context.Background(), 7,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestCancellations_WrapsRepositoryFailure(t *testing.T) {
	repo := &stubHistoryRepo{listErr: errors.New("connection reset")}
	rec := NewRecorder(repo, nopLogger{})

	_, err := rec.Cancellations(context.Background(), 7, time.Now().Add(-time.Hour), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordFailed)
}

func TestPurgeCancellation_DeletesRecord(t *testing.T) {
	repo := &stubHistoryRepo{}
	rec := NewRecorder(repo, nopLogger{})

	id := uuid.New()
	require.NoError(t, rec.PurgeCancellation(context.Background(), id))
	require.Len(t, repo.deletedIDs, 1)
	assert.Equal(t, id, repo.deletedIDs[0])
}

func TestPurgeCancellation_MapsNotFound(t *testing.T) {
	repo := &stubHistoryRepo{deleteErr: historyRepo.ErrRecordNotFound}
	rec := NewRecorder(repo, nopLogger{})

	err := rec.PurgeCancellation(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPurgeCancellation_WrapsRepositoryFailure(t *testing.T) {
	repo := &stubHistoryRepo{deleteErr: errors.New("connection reset")}
	rec := NewRecorder(repo, nopLogger{})

	err := rec.PurgeCancellation(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordFailed)
}
