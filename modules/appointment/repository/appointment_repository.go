package repository

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"mentorhub/core/database"
	"mentorhub/core/logger"
	"mentorhub/core/params"
	"mentorhub/modules/appointment/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AppointmentRepository handles appointment database operations
type AppointmentRepository struct {
	DB database.IDatabase
}

// NewAppointmentRepository creates a new repository instance
func NewAppointmentRepository(db database.IDatabase) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

// AppointmentRepositoryInterface defines the repository contract
type AppointmentRepositoryInterface interface {
	Create(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.AppointmentWithNames, error)
	ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]entity.AppointmentWithNames, error)
	ListActiveByFaculty(ctx context.Context, facultyID uuid.UUID) ([]entity.Appointment, error)
	CountActiveByStudent(ctx context.Context, studentID uuid.UUID) (int, error)
	UpdateStatus(ctx context.Context, appt *entity.Appointment) error
	UpdateSchedule(ctx context.Context, appt *entity.Appointment) error
	MarkCompletedTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error)
	DeletePending(ctx context.Context, id uuid.UUID, studentID uuid.UUID) (bool, error)
	ListHistory(ctx context.Context, filter HistoryFilter, qp params.QueryParams) (*entity.PaginatedAppointments, error)
	ListAcceptedBetween(ctx context.Context, from time.Time, to time.Time) ([]entity.AppointmentWithNames, error)
}

const apptColumns = `
	id, student_id, faculty_id, start_at, duration_minutes, meeting_mode,
	location, message, status, cancelled_by, cancel_reason, reschedule_reason,
	created_at, updated_at`

const apptNamedColumns = `
	a.id, a.student_id, a.faculty_id, a.start_at, a.duration_minutes, a.meeting_mode,
	a.location, a.message, a.status, a.cancelled_by, a.cancel_reason, a.reschedule_reason,
	a.created_at, a.updated_at,
	fu.name AS faculty_name,
	su.name AS student_name`

const apptNameJoins = `
	JOIN faculty f ON f.id = a.faculty_id
	JOIN users fu ON fu.id = f.user_id
	JOIN students s ON s.id = a.student_id
	JOIN users su ON su.id = s.user_id`

func (r *AppointmentRepository) Create(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error) {
	query := `
		INSERT INTO appointments (student_id, faculty_id, start_at, duration_minutes,
		                          meeting_mode, location, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + apptColumns

	var created entity.Appointment
	err := r.DB.GetContext(ctx, &created, query,
		appt.StudentID, appt.FacultyID, appt.StartAt, appt.DurationMinutes,
		appt.MeetingMode, appt.Location, appt.Message, appt.Status)
	if err != nil {
		logger.Error("AppointmentRepository:Create:Error:", err)
		return nil, err
	}

	return &created, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	query := `SELECT ` + apptColumns + ` FROM appointments WHERE id = $1`

	var appt entity.Appointment
	err := r.DB.GetContext(ctx, &appt, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AppointmentRepository:GetByID:Error:", err)
		return nil, err
	}

	return &appt, nil
}

func (r *AppointmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.AppointmentWithNames, error) {
	query := `
		SELECT ` + apptNamedColumns + `
		FROM appointments a` + apptNameJoins + `
		WHERE a.student_id = $1
		ORDER BY a.start_at DESC`

	var appts []entity.AppointmentWithNames
	err := r.DB.SelectContext(ctx, &appts, query, studentID)
	if err != nil {
		logger.Error("AppointmentRepository:ListByStudent:Error:", err)
		return nil, err
	}

	return appts, nil
}

func (r *AppointmentRepository) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]entity.AppointmentWithNames, error) {
	query := `
		SELECT ` + apptNamedColumns + `
		FROM appointments a` + apptNameJoins + `
		WHERE a.faculty_id = $1
		ORDER BY a.start_at DESC`

	var appts []entity.AppointmentWithNames
	err := r.DB.SelectContext(ctx, &appts, query, facultyID)
	if err != nil {
		logger.Error("AppointmentRepository:ListByFaculty:Error:", err)
		return nil, err
	}

	return appts, nil
}

// ListActiveByFaculty returns the faculty's pending and accepted appointments,
// the only rows that can block a candidate slot
func (r *AppointmentRepository) ListActiveByFaculty(ctx context.Context, facultyID uuid.UUID) ([]entity.Appointment, error) {
	query := `
		SELECT ` + apptColumns + `
		FROM appointments
		WHERE faculty_id = $1 AND status IN ('pending', 'accepted')
		ORDER BY start_at`

	var appts []entity.Appointment
	err := r.DB.SelectContext(ctx, &appts, query, facultyID)
	if err != nil {
		logger.Error("AppointmentRepository:ListActiveByFaculty:Error:", err)
		return nil, err
	}

	return appts, nil
}

func (r *AppointmentRepository) CountActiveByStudent(ctx context.Context, studentID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM appointments
		WHERE student_id = $1 AND status IN ('pending', 'accepted')`

	var count int
	err := r.DB.GetContext(ctx, &count, query, studentID)
	if err != nil {
		logger.Error("AppointmentRepository:CountActiveByStudent:Error:", err)
		return 0, err
	}

	return count, nil
}

// UpdateStatus persists a status transition together with its bookkeeping
// fields (cancelled_by, cancel_reason)
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, appt *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET status = $2, cancelled_by = $3, cancel_reason = $4, updated_at = NOW()
		WHERE id = $1`

	err := r.DB.ExecContext(ctx, query, appt.ID, appt.Status, appt.CancelledBy, appt.CancelReason)
	if err != nil {
		logger.Error("AppointmentRepository:UpdateStatus:Error:", err)
		return err
	}
	return nil
}

// UpdateSchedule persists a reschedule: new start, reset status, reason
func (r *AppointmentRepository) UpdateSchedule(ctx context.Context, appt *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET start_at = $2, status = $3, reschedule_reason = $4, updated_at = NOW()
		WHERE id = $1`

	err := r.DB.ExecContext(ctx, query, appt.ID, appt.StartAt, appt.Status, appt.RescheduleReason)
	if err != nil {
		logger.Error("AppointmentRepository:UpdateSchedule:Error:", err)
		return err
	}
	return nil
}

// MarkCompletedTx flips an accepted appointment to completed within the
// caller's transaction. The status predicate makes the row transition
// exclusive: a second completer sees zero rows affected.
func (r *AppointmentRepository) MarkCompletedTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error) {
	query := `
		UPDATE appointments
		SET status = 'completed', updated_at = NOW()
		WHERE id = $1 AND status = 'accepted'`

	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("AppointmentRepository:MarkCompletedTx:Error:", err)
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// DeletePending removes a still-pending appointment owned by the student.
// Returns false when no such row exists (wrong owner, wrong status, or gone).
func (r *AppointmentRepository) DeletePending(ctx context.Context, id uuid.UUID, studentID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM appointments
		WHERE id = $1 AND student_id = $2 AND status = 'pending'`

	result, err := r.DB.SQLx().ExecContext(ctx, query, id, studentID)
	if err != nil {
		logger.Error("AppointmentRepository:DeletePending:Error:", err)
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// HistoryFilter narrows the history listing. Exactly one of StudentID or
// FacultyID is set, depending on who is asking.
type HistoryFilter struct {
	StudentID uuid.UUID
	FacultyID uuid.UUID
	Status    entity.AppointmentStatus // optional, must be terminal
	Date      *time.Time               // optional, matches the calendar date
}

func (r *AppointmentRepository) ListHistory(ctx context.Context, filter HistoryFilter, qp params.QueryParams) (*entity.PaginatedAppointments, error) {
	where := ` WHERE a.status IN ('completed', 'cancelled', 'failed')`
	args := []any{}

	if filter.StudentID != uuid.Nil {
		args = append(args, filter.StudentID)
		where += ` AND a.student_id = $1`
	} else {
		args = append(args, filter.FacultyID)
		where += ` AND a.faculty_id = $1`
	}

	argn := 2
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += ` AND a.status = $` + itoa(argn)
		argn++
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		where += ` AND a.start_at::date = $` + itoa(argn) + `::date`
		argn++
	}

	var totalItems int
	countQuery := `SELECT COUNT(*) FROM appointments a` + where
	if err := r.DB.GetContext(ctx, &totalItems, countQuery, args...); err != nil {
		logger.Error("AppointmentRepository:ListHistory:Count:Error:", err)
		return nil, err
	}

	offset := (qp.PageNumber - 1) * qp.PageSize
	args = append(args, qp.PageSize, offset)
	query := `
		SELECT ` + apptNamedColumns + `
		FROM appointments a` + apptNameJoins + where + `
		ORDER BY a.start_at DESC
		LIMIT $` + itoa(argn) + ` OFFSET $` + itoa(argn+1)

	var items []entity.AppointmentWithNames
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		logger.Error("AppointmentRepository:ListHistory:Error:", err)
		return nil, err
	}

	return &entity.PaginatedAppointments{
		Items:      items,
		TotalItems: totalItems,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

// ListAcceptedBetween returns accepted appointments starting inside the
// window, used by the daily reminder job
func (r *AppointmentRepository) ListAcceptedBetween(ctx context.Context, from time.Time, to time.Time) ([]entity.AppointmentWithNames, error) {
	query := `
		SELECT ` + apptNamedColumns + `
		FROM appointments a` + apptNameJoins + `
		WHERE a.status = 'accepted' AND a.start_at >= $1 AND a.start_at < $2
		ORDER BY a.start_at`

	var appts []entity.AppointmentWithNames
	err := r.DB.SelectContext(ctx, &appts, query, from, to)
	if err != nil {
		logger.Error("AppointmentRepository:ListAcceptedBetween:Error:", err)
		return nil, err
	}

	return appts, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
