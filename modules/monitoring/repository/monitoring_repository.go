package repository

import (
	"context"
	"database/sql"

	"mentorhub/core/database"
	"mentorhub/core/logger"
	"mentorhub/modules/monitoring/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// MonitoringRepository handles monitoring-session database operations
type MonitoringRepository struct {
	DB database.IDatabase
}

func NewMonitoringRepository(db database.IDatabase) *MonitoringRepository {
	return &MonitoringRepository{DB: db}
}

// MonitoringRepositoryInterface defines the repository contract
type MonitoringRepositoryInterface interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, session *entity.MonitoringSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MonitoringSession, error)
	GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*entity.MonitoringSession, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.MonitoringSession, error)
	ListByFacultyAndStudent(ctx context.Context, facultyID uuid.UUID, studentID uuid.UUID) ([]entity.MonitoringSession, error)
}

const sessionColumns = `
	id, ref_code, appointment_id, student_id, faculty_id,
	date_of_monitoring, high_points, created_at`

// InsertTx writes a session inside the caller's transaction so the insert
// commits or rolls back together with the appointment status update
func (r *MonitoringRepository) InsertTx(ctx context.Context, tx *sqlx.Tx, session *entity.MonitoringSession) error {
	query := `
		INSERT INTO monitoring_sessions (ref_code, appointment_id, student_id, faculty_id,
		                                 date_of_monitoring, high_points)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := tx.QueryRowContext(ctx, query,
		session.RefCode, session.AppointmentID, session.StudentID, session.FacultyID,
		session.DateOfMonitoring, session.HighPoints).
		Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		logger.Error("MonitoringRepository:InsertTx:Error:", err)
		return err
	}

	return nil
}

func (r *MonitoringRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MonitoringSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM monitoring_sessions WHERE id = $1`

	var session entity.MonitoringSession
	err := r.DB.GetContext(ctx, &session, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MonitoringRepository:GetByID:Error:", err)
		return nil, err
	}

	return &session, nil
}

func (r *MonitoringRepository) GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*entity.MonitoringSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM monitoring_sessions WHERE appointment_id = $1`

	var session entity.MonitoringSession
	err := r.DB.GetContext(ctx, &session, query, appointmentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("MonitoringRepository:GetByAppointmentID:Error:", err)
		return nil, err
	}

	return &session, nil
}

func (r *MonitoringRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.MonitoringSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM monitoring_sessions
		WHERE student_id = $1
		ORDER BY date_of_monitoring DESC, created_at DESC`

	var sessions []entity.MonitoringSession
	err := r.DB.SelectContext(ctx, &sessions, query, studentID)
	if err != nil {
		logger.Error("MonitoringRepository:ListByStudent:Error:", err)
		return nil, err
	}

	return sessions, nil
}

func (r *MonitoringRepository) ListByFacultyAndStudent(ctx context.Context, facultyID uuid.UUID, studentID uuid.UUID) ([]entity.MonitoringSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM monitoring_sessions
		WHERE faculty_id = $1 AND student_id = $2
		ORDER BY date_of_monitoring DESC, created_at DESC`

	var sessions []entity.MonitoringSession
	err := r.DB.SelectContext(ctx, &sessions, query, facultyID, studentID)
	if err != nil {
		logger.Error("MonitoringRepository:ListByFacultyAndStudent:Error:", err)
		return nil, err
	}

	return sessions, nil
}
