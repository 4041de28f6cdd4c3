package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_AllowedPaths(t *testing.T) {
	tests := []struct {
		name    string
		current AppointmentStatus
		action  Action
		want    AppointmentStatus
	}{
		{"accept pending", StatusPending, ActionAccept, StatusAccepted},
		{"cancel pending", StatusPending, ActionCancel, StatusCancelled},
		{"cancel accepted", StatusAccepted, ActionCancel, StatusCancelled},
		{"fail accepted", StatusAccepted, ActionFail, StatusFailed},
		{"complete accepted", StatusAccepted, ActionComplete, StatusCompleted},
		{"reschedule pending", StatusPending, ActionReschedule, StatusPending},
		{"reschedule accepted", StatusAccepted, ActionReschedule, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.current, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransition_TerminalStatesRejectEverything(t *testing.T) {
	terminals := []AppointmentStatus{StatusCompleted, StatusCancelled, StatusFailed}
	actions := []Action{ActionAccept, ActionCancel, ActionFail, ActionComplete, ActionReschedule}

	for _, status := range terminals {
		for _, action := range actions {
			got, err := Transition(status, action)
			assert.ErrorIs(t, err, ErrTerminalState, "%s on %s", action, status)
			assert.Equal(t, status, got, "status must not change on rejection")
		}
	}
}

func TestTransition_GuardedActions(t *testing.T) {
	_, err := Transition(StatusPending, ActionComplete)
	assert.ErrorIs(t, err, ErrNotAccepted)

	_, err = Transition(StatusPending, ActionFail)
	assert.ErrorIs(t, err, ErrNotAccepted)

	_, err = Transition(StatusAccepted, ActionAccept)
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestTransition_UnknownAction(t *testing.T) {
	_, err := Transition(StatusPending, Action("archive"))
	assert.Error(t, err)
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusAccepted.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, StatusFailed.IsActive())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
}
