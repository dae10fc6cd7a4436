package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_TransitionPredicates(t *testing.T) {
	tests := []struct {
		status        AppointmentStatus
		canConfirm    bool
		canComplete   bool
		canCancel     bool
		canReschedule bool
		requiresAudit bool
	}{
		{StatusPending, true, true, true, true, false},
		{StatusConfirmed, false, true, true, true, true},
		{StatusCompleted, false, false, false, false, true},
		{StatusCancelled, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}

			assert.Equal(t, tt.canConfirm, a.CanBeConfirmed())
			assert.Equal(t, tt.canComplete, a.CanBeCompleted())
			assert.Equal(t, tt.canCancel, a.CanBeCancelled())
			assert.Equal(t, tt.canReschedule, a.CanBeRescheduled())
			assert.Equal(t, tt.requiresAudit, a.RequiresDeletionAudit())
		})
	}
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	pending := &Appointment{Status: StatusPending}
	assert.True(t, pending.CanTransitionTo(StatusConfirmed))
	assert.True(t, pending.CanTransitionTo(StatusCompleted))
	assert.True(t, pending.CanTransitionTo(StatusCancelled))
	assert.False(t, pending.CanTransitionTo(StatusPending))

	confirmed := &Appointment{Status: StatusConfirmed}
	assert.False(t, confirmed.CanTransitionTo(StatusConfirmed))
	assert.True(t, confirmed.CanTransitionTo(StatusCompleted))
	assert.True(t, confirmed.CanTransitionTo(StatusCancelled))

	completed := &Appointment{Status: StatusCompleted}
	assert.False(t, completed.CanTransitionTo(StatusConfirmed))
	assert.False(t, completed.CanTransitionTo(StatusCompleted))
	assert.False(t, completed.CanTransitionTo(StatusCancelled))

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.CanTransitionTo(StatusConfirmed))
	assert.False(t, cancelled.CanTransitionTo(StatusCompleted))
	assert.False(t, cancelled.CanTransitionTo(StatusCancelled))
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}
