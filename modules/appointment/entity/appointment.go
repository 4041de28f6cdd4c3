package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusAccepted  AppointmentStatus = "accepted"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusFailed    AppointmentStatus = "failed"
)

// IsTerminal reports whether no further transition may leave this status
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusFailed
}

// IsActive reports whether the appointment counts against the
// one-active-appointment-per-student cap
func (s AppointmentStatus) IsActive() bool {
	return s == StatusPending || s == StatusAccepted
}

// MeetingMode distinguishes online meetings from in-person ones
type MeetingMode string

const (
	MeetingModeOnline  MeetingMode = "online"
	MeetingModeOffline MeetingMode = "offline"
)

func (m MeetingMode) Valid() bool {
	return m == MeetingModeOnline || m == MeetingModeOffline
}

// CancelledBy records which side cancelled or failed an appointment
type CancelledBy string

const (
	CancelledByStudent CancelledBy = "student"
	CancelledByFaculty CancelledBy = "faculty"
)

// Appointment is a mentoring meeting booked by a student with a faculty member
type Appointment struct {
	ID               uuid.UUID         `db:"id" json:"id"`
	StudentID        uuid.UUID         `db:"student_id" json:"student_id"`
	FacultyID        uuid.UUID         `db:"faculty_id" json:"faculty_id"`
	StartAt          time.Time         `db:"start_at" json:"start_at"`
	DurationMinutes  int               `db:"duration_minutes" json:"duration_minutes"`
	MeetingMode      MeetingMode       `db:"meeting_mode" json:"meeting_mode"`
	Location         string            `db:"location" json:"location"`
	Message          string            `db:"message" json:"message"`
	Status           AppointmentStatus `db:"status" json:"status"`
	CancelledBy      *CancelledBy      `db:"cancelled_by" json:"cancelled_by,omitempty"`
	CancelReason     *string           `db:"cancel_reason" json:"cancel_reason,omitempty"`
	RescheduleReason *string           `db:"reschedule_reason" json:"reschedule_reason,omitempty"`
	CreatedAt        time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at" json:"updated_at"`
}

// EndAt returns the instant the appointment is scheduled to finish
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsOver reports whether the appointment's scheduled window has fully elapsed
// at the given instant. The boundary is inclusive: an appointment ending
// exactly at now is over.
func (a *Appointment) IsOver(now time.Time) bool {
	return !now.Before(a.EndAt())
}

// Overlaps reports whether the half-open interval [start, start+duration)
// intersects this appointment's interval. Touching endpoints do not overlap,
// so back-to-back slots are fine.
func (a *Appointment) Overlaps(start time.Time, durationMinutes int) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return start.Before(a.EndAt()) && end.After(a.StartAt)
}

// AppointmentWithNames joins the counterpart display names onto a row for
// listing endpoints
type AppointmentWithNames struct {
	Appointment
	FacultyName string `db:"faculty_name" json:"faculty_name"`
	StudentName string `db:"student_name" json:"student_name"`
}
