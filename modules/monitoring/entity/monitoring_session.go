package entity

import (
	"time"

	"github.com/google/uuid"
)

// MonitoringSession is the mentoring note recorded when an appointment is
// completed. Written exactly once, never updated or deleted.
type MonitoringSession struct {
	ID               uuid.UUID `db:"id" json:"id"`
	RefCode          string    `db:"ref_code" json:"ref_code"`
	AppointmentID    uuid.UUID `db:"appointment_id" json:"appointment_id"`
	StudentID        uuid.UUID `db:"student_id" json:"student_id"`
	FacultyID        uuid.UUID `db:"faculty_id" json:"faculty_id"`
	DateOfMonitoring time.Time `db:"date_of_monitoring" json:"date_of_monitoring"`
	HighPoints       string    `db:"high_points" json:"high_points"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
