package service

import (
	"testing"
	"time"

	"mentorhub/modules/appointment/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(start time.Time, minutes int, status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:              uuid.New(),
		StudentID:       uuid.New(),
		StartAt:         start,
		DurationMinutes: minutes,
		Status:          status,
	}
}

func TestFindConflict_OverlapDetected(t *testing.T) {
	base := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	existing := []entity.Appointment{
		slotAt(base, 60, entity.StatusAccepted),
	}

	conflict := FindConflict(existing, base.Add(30*time.Minute), 60, ConflictOptions{})
	require.NotNil(t, conflict)
	assert.Equal(t, existing[0].ID, conflict.ID)
}

func TestFindConflict_TouchingSlotsDoNotConflict(t *testing.T) {
	base := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	existing := []entity.Appointment{
		slotAt(base, 60, entity.StatusAccepted),
	}

	assert.Nil(t, FindConflict(existing, base.Add(60*time.Minute), 30, ConflictOptions{}), "slot starting at the end")
	assert.Nil(t, FindConflict(existing, base.Add(-30*time.Minute), 30, ConflictOptions{}), "slot ending at the start")
}

func TestFindConflict_FinalizedSlotsNeverBlock(t *testing.T) {
	base := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	existing := []entity.Appointment{
		slotAt(base, 60, entity.StatusCancelled),
		slotAt(base, 60, entity.StatusCompleted),
		slotAt(base, 60, entity.StatusFailed),
	}

	assert.Nil(t, FindConflict(existing, base, 60, ConflictOptions{}))
}

func TestFindConflict_ExcludesSelfOnReschedule(t *testing.T) {
	base := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	mine := slotAt(base, 60, entity.StatusAccepted)
	other := slotAt(base.Add(2*time.Hour), 60, entity.StatusPending)
	existing := []entity.Appointment{mine, other}

	// Moving within my own window is fine once I am excluded
	assert.Nil(t, FindConflict(existing, base.Add(15*time.Minute), 30, ConflictOptions{
		ExcludeAppointmentID: mine.ID,
	}))

	// But another appointment's window still blocks
	conflict := FindConflict(existing, other.StartAt, 30, ConflictOptions{
		ExcludeAppointmentID: mine.ID,
	})
	require.NotNil(t, conflict)
	assert.Equal(t, other.ID, conflict.ID)
}

func TestFindConflict_ExcludesStudentStatus(t *testing.T) {
	base := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	studentID := uuid.New()

	cancelled := slotAt(base, 60, entity.StatusCancelled)
	cancelled.StudentID = studentID
	pending := slotAt(base, 60, entity.StatusPending)
	pending.StudentID = studentID

	opts := ConflictOptions{
		ExcludeStudentStatus: &StudentStatusExclusion{StudentID: studentID, Status: entity.StatusCancelled},
	}

	// The student's own cancelled row on the slot never blocks
	assert.Nil(t, FindConflict([]entity.Appointment{cancelled}, base, 60, opts))

	// The same student's pending row still does
	conflict := FindConflict([]entity.Appointment{pending}, base, 60, opts)
	require.NotNil(t, conflict)
	assert.Equal(t, pending.ID, conflict.ID)
}
