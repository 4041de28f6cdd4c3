package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student is the mentee record tied to a user account. FacultyID points at
// the assigned mentor, when one is assigned.
type Student struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	RegNo     string     `db:"reg_no" json:"reg_no"`
	FacultyID *uuid.UUID `db:"faculty_id" json:"faculty_id,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Faculty is the mentor record tied to a user account
type Faculty struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	Department string    `db:"department" json:"department"`
	Cabin      string    `db:"cabin" json:"cabin"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// StudentWithUser joins account fields onto the student row for listings
type StudentWithUser struct {
	Student
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// FacultyWithUser joins account fields onto the faculty row
type FacultyWithUser struct {
	Faculty
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}
