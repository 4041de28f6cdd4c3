package repository

import (
	"context"
	"database/sql"

	"mentorhub/core/database"
	"mentorhub/core/logger"
	authentity "mentorhub/modules/auth/entity"
	"mentorhub/modules/directory/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// DirectoryRepository handles student and faculty record operations
type DirectoryRepository struct {
	DB database.IDatabase
}

func NewDirectoryRepository(db database.IDatabase) *DirectoryRepository {
	return &DirectoryRepository{DB: db}
}

// DirectoryRepositoryInterface defines the repository contract
type DirectoryRepositoryInterface interface {
	CreateStudent(ctx context.Context, user *authentity.User, student *entity.Student) error
	CreateFaculty(ctx context.Context, user *authentity.User, faculty *entity.Faculty) error
	GetStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	GetStudentByUserID(ctx context.Context, userID uuid.UUID) (*entity.Student, error)
	GetFacultyByID(ctx context.Context, id uuid.UUID) (*entity.FacultyWithUser, error)
	GetFacultyByUserID(ctx context.Context, userID uuid.UUID) (*entity.Faculty, error)
	ListMentees(ctx context.Context, facultyID uuid.UUID) ([]entity.StudentWithUser, error)
	DeleteStudentCascade(ctx context.Context, studentID uuid.UUID) (bool, error)
}

// CreateStudent inserts the user account and the student record in one
// transaction, so an account never exists without its student row
func (r *DirectoryRepository) CreateStudent(ctx context.Context, user *authentity.User, student *entity.Student) error {
	return r.DB.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		userQuery := `
			INSERT INTO users (name, email, password_hash, user_type)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRowContext(ctx, userQuery,
			user.Name, user.Email, user.PasswordHash, user.UserType).
			Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			logger.Error("DirectoryRepository:CreateStudent:InsertUser:Error:", err)
			return err
		}

		studentQuery := `
			INSERT INTO students (user_id, reg_no, faculty_id)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at`

		student.UserID = user.ID
		err = tx.QueryRowContext(ctx, studentQuery,
			student.UserID, student.RegNo, student.FacultyID).
			Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
		if err != nil {
			logger.Error("DirectoryRepository:CreateStudent:InsertStudent:Error:", err)
			return err
		}

		return nil
	})
}

// CreateFaculty inserts the user account and the faculty record in one transaction
func (r *DirectoryRepository) CreateFaculty(ctx context.Context, user *authentity.User, faculty *entity.Faculty) error {
	return r.DB.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		userQuery := `
			INSERT INTO users (name, email, password_hash, user_type)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRowContext(ctx, userQuery,
			user.Name, user.Email, user.PasswordHash, user.UserType).
			Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			logger.Error("DirectoryRepository:CreateFaculty:InsertUser:Error:", err)
			return err
		}

		facultyQuery := `
			INSERT INTO faculty (user_id, department, cabin)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at`

		faculty.UserID = user.ID
		err = tx.QueryRowContext(ctx, facultyQuery,
			faculty.UserID, faculty.Department, faculty.Cabin).
			Scan(&faculty.ID, &faculty.CreatedAt, &faculty.UpdatedAt)
		if err != nil {
			logger.Error("DirectoryRepository:CreateFaculty:InsertFaculty:Error:", err)
			return err
		}

		return nil
	})
}

func (r *DirectoryRepository) GetStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	query := `SELECT id, user_id, reg_no, faculty_id, created_at, updated_at FROM students WHERE id = $1`

	var student entity.Student
	err := r.DB.GetContext(ctx, &student, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DirectoryRepository:GetStudentByID:Error:", err)
		return nil, err
	}

	return &student, nil
}

func (r *DirectoryRepository) GetStudentByUserID(ctx context.Context, userID uuid.UUID) (*entity.Student, error) {
	query := `SELECT id, user_id, reg_no, faculty_id, created_at, updated_at FROM students WHERE user_id = $1`

	var student entity.Student
	err := r.DB.GetContext(ctx, &student, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DirectoryRepository:GetStudentByUserID:Error:", err)
		return nil, err
	}

	return &student, nil
}

func (r *DirectoryRepository) GetFacultyByID(ctx context.Context, id uuid.UUID) (*entity.FacultyWithUser, error) {
	query := `
		SELECT f.id, f.user_id, f.department, f.cabin, f.created_at, f.updated_at,
		       u.name, u.email
		FROM faculty f
		JOIN users u ON u.id = f.user_id
		WHERE f.id = $1`

	var faculty entity.FacultyWithUser
	err := r.DB.GetContext(ctx, &faculty, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DirectoryRepository:GetFacultyByID:Error:", err)
		return nil, err
	}

	return &faculty, nil
}

func (r *DirectoryRepository) GetFacultyByUserID(ctx context.Context, userID uuid.UUID) (*entity.Faculty, error) {
	query := `SELECT id, user_id, department, cabin, created_at, updated_at FROM faculty WHERE user_id = $1`

	var faculty entity.Faculty
	err := r.DB.GetContext(ctx, &faculty, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DirectoryRepository:GetFacultyByUserID:Error:", err)
		return nil, err
	}

	return &faculty, nil
}

func (r *DirectoryRepository) ListMentees(ctx context.Context, facultyID uuid.UUID) ([]entity.StudentWithUser, error) {
	query := `
		SELECT s.id, s.user_id, s.reg_no, s.faculty_id, s.created_at, s.updated_at,
		       u.name, u.email
		FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE s.faculty_id = $1
		ORDER BY u.name`

	var students []entity.StudentWithUser
	err := r.DB.SelectContext(ctx, &students, query, facultyID)
	if err != nil {
		logger.Error("DirectoryRepository:ListMentees:Error:", err)
		return nil, err
	}

	return students, nil
}

// DeleteStudentCascade removes a student and everything hanging off them:
// monitoring sessions, appointments, the student row and the user account,
// all in one transaction
func (r *DirectoryRepository) DeleteStudentCascade(ctx context.Context, studentID uuid.UUID) (bool, error) {
	var userID uuid.UUID

	err := r.DB.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowContext(ctx, `SELECT user_id FROM students WHERE id = $1`, studentID).Scan(&userID)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM monitoring_sessions WHERE student_id = $1`, studentID); err != nil {
			logger.Error("DirectoryRepository:DeleteStudentCascade:Sessions:Error:", err)
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM appointments WHERE student_id = $1`, studentID); err != nil {
			logger.Error("DirectoryRepository:DeleteStudentCascade:Appointments:Error:", err)
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, studentID); err != nil {
			logger.Error("DirectoryRepository:DeleteStudentCascade:Student:Error:", err)
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
			logger.Error("DirectoryRepository:DeleteStudentCascade:User:Error:", err)
			return err
		}

		return nil
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
