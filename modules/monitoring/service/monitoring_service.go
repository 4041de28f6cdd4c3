package service

import (
	"context"

	"mentorhub/core/errors"
	directoryrepo "mentorhub/modules/directory/repository"
	"mentorhub/modules/monitoring/dto"
	"mentorhub/modules/monitoring/repository"

	"github.com/google/uuid"
)

// MonitoringService exposes the read side of mentoring notes. Sessions are
// written only by the appointment completion transaction.
type MonitoringService struct {
	repo          repository.MonitoringRepositoryInterface
	directoryRepo directoryrepo.DirectoryRepositoryInterface
}

// MonitoringServiceInterface defines the service contract
type MonitoringServiceInterface interface {
	ListMine(ctx context.Context, studentUserID uuid.UUID) ([]dto.MonitoringSessionResponse, *errors.AppError)
	ListForMentee(ctx context.Context, facultyUserID uuid.UUID, studentID uuid.UUID) ([]dto.MonitoringSessionResponse, *errors.AppError)
}

// NewMonitoringService creates a new monitoring service
func NewMonitoringService(repo repository.MonitoringRepositoryInterface, directoryRepo directoryrepo.DirectoryRepositoryInterface) MonitoringServiceInterface {
	return &MonitoringService{
		repo:          repo,
		directoryRepo: directoryRepo,
	}
}

// ListMine returns the calling student's own monitoring sessions
func (s *MonitoringService) ListMine(ctx context.Context, studentUserID uuid.UUID) ([]dto.MonitoringSessionResponse, *errors.AppError) {
	student, err := s.directoryRepo.GetStudentByUserID(ctx, studentUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve student record", err)
	}
	if student == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Student record not found", nil)
	}

	sessions, err := s.repo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list monitoring sessions", err)
	}

	return dto.ToMonitoringSessionResponses(sessions), nil
}

// ListForMentee returns the sessions the calling faculty recorded for one of
// their mentees. Only sessions belonging to this faculty are visible.
func (s *MonitoringService) ListForMentee(ctx context.Context, facultyUserID uuid.UUID, studentID uuid.UUID) ([]dto.MonitoringSessionResponse, *errors.AppError) {
	faculty, err := s.directoryRepo.GetFacultyByUserID(ctx, facultyUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve faculty record", err)
	}
	if faculty == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Faculty record not found", nil)
	}

	sessions, err := s.repo.ListByFacultyAndStudent(ctx, faculty.ID, studentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list monitoring sessions", err)
	}

	return dto.ToMonitoringSessionResponses(sessions), nil
}
