package service

import (
	"time"

	"mentorhub/modules/appointment/entity"

	"github.com/google/uuid"
)

// ConflictOptions narrows which existing appointments count as obstacles
type ConflictOptions struct {
	// ExcludeAppointmentID ignores one appointment, used when rescheduling an
	// appointment against itself
	ExcludeAppointmentID uuid.UUID
	// ExcludeStudentStatus ignores the given student's appointments in the
	// given status, used when booking to skip the caller's own cancelled rows
	// on the same slot
	ExcludeStudentStatus *StudentStatusExclusion
}

type StudentStatusExclusion struct {
	StudentID uuid.UUID
	Status    entity.AppointmentStatus
}

// FindConflict returns the first existing appointment whose half-open
// interval overlaps the candidate slot, or nil when the slot is free.
// Cancelled appointments never block; neither do completed or failed ones,
// since they are historical. Callers pass only pending/accepted rows, but the
// status check is repeated here so both booking and rescheduling share one
// predicate.
func FindConflict(existing []entity.Appointment, start time.Time, durationMinutes int, opts ConflictOptions) *entity.Appointment {
	for i := range existing {
		ex := &existing[i]

		if !ex.Status.IsActive() {
			continue
		}
		if opts.ExcludeAppointmentID != uuid.Nil && ex.ID == opts.ExcludeAppointmentID {
			continue
		}
		if e := opts.ExcludeStudentStatus; e != nil && ex.StudentID == e.StudentID && ex.Status == e.Status {
			continue
		}

		if ex.Overlaps(start, durationMinutes) {
			return ex
		}
	}
	return nil
}
