package entity

import (
	"errors"
	"fmt"
)

// Action is a lifecycle operation applied to an appointment
type Action string

const (
	ActionAccept     Action = "accept"
	ActionCancel     Action = "cancel"
	ActionFail       Action = "fail"
	ActionComplete   Action = "complete"
	ActionReschedule Action = "reschedule"
)

var (
	// ErrTerminalState is returned for any action on a finalized appointment
	ErrTerminalState = errors.New("appointment is already finalized")
	// ErrNotAccepted is returned when complete/fail is attempted before acceptance
	ErrNotAccepted = errors.New("only accepted appointments can be completed or marked failed")
	// ErrNotPending is returned when accept is attempted on a non-pending appointment
	ErrNotPending = errors.New("only pending appointments can be accepted")
)

// allowedTransitions maps each action to the statuses it may be applied from
// and the status it produces. Every endpoint validates against this single
// table, so the student and faculty paths cannot drift apart.
var allowedTransitions = map[Action]struct {
	from map[AppointmentStatus]bool
	to   AppointmentStatus
}{
	ActionAccept: {
		from: map[AppointmentStatus]bool{StatusPending: true},
		to:   StatusAccepted,
	},
	ActionCancel: {
		from: map[AppointmentStatus]bool{StatusPending: true, StatusAccepted: true},
		to:   StatusCancelled,
	},
	ActionFail: {
		from: map[AppointmentStatus]bool{StatusAccepted: true},
		to:   StatusFailed,
	},
	ActionComplete: {
		from: map[AppointmentStatus]bool{StatusAccepted: true},
		to:   StatusCompleted,
	},
	ActionReschedule: {
		from: map[AppointmentStatus]bool{StatusPending: true, StatusAccepted: true},
		to:   StatusPending,
	},
}

// Transition validates an action against the current status and returns the
// resulting status. It is a pure function: guards that need more than the
// status (ownership, time gate, reasons) live with the service.
func Transition(current AppointmentStatus, action Action) (AppointmentStatus, error) {
	rule, ok := allowedTransitions[action]
	if !ok {
		return current, fmt.Errorf("unknown action %q", action)
	}

	if !rule.from[current] {
		if current.IsTerminal() {
			return current, ErrTerminalState
		}
		switch action {
		case ActionComplete, ActionFail:
			return current, ErrNotAccepted
		case ActionAccept:
			return current, ErrNotPending
		}
		return current, fmt.Errorf("cannot %s an appointment in status %q", action, current)
	}

	return rule.to, nil
}
