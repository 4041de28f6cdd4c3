package service

import (
	"context"
	"fmt"

	"mentorhub/core/constants"
	"mentorhub/core/database"
	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/utils"
	authentity "mentorhub/modules/auth/entity"
	"mentorhub/modules/directory/dto"
	"mentorhub/modules/directory/entity"
	"mentorhub/modules/directory/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// DirectoryService manages student and faculty records
type DirectoryService struct {
	repo repository.DirectoryRepositoryInterface
}

type DirectoryServiceInterface interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, *errors.AppError)
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*dto.FacultyResponse, *errors.AppError)
	DeleteStudent(ctx context.Context, studentID uuid.UUID) *errors.AppError
	ListMentees(ctx context.Context, facultyUserID uuid.UUID) ([]dto.StudentResponse, *errors.AppError)
	BookingLink(ctx context.Context, facultyUserID uuid.UUID) (*dto.BookingLinkResponse, *errors.AppError)
}

func NewDirectoryService(repo repository.DirectoryRepositoryInterface) DirectoryServiceInterface {
	return &DirectoryService{repo: repo}
}

// CreateStudent registers a mentee: the user account and the student record
// are inserted together, so neither can exist without the other
func (service *DirectoryService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, *errors.AppError) {
	logger.Info("DirectoryService:CreateStudent:Start", "email", req.Email, "reg_no", req.RegNo)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("DirectoryService:CreateStudent:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	student := &entity.Student{RegNo: req.RegNo}
	if req.FacultyID != "" {
		facultyID, errParse := uuid.Parse(req.FacultyID)
		if errParse != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid faculty_id", nil)
		}
		faculty, errGet := service.repo.GetFacultyByID(ctx, facultyID)
		if errGet != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up faculty", errGet)
		}
		if faculty == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "Faculty member not found", nil)
		}
		student.FacultyID = &facultyID
	}

	user := &authentity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		UserType:     constants.UserTypeStudent,
	}

	if err := service.repo.CreateStudent(ctx, user, student); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "A user with this email or registration number already exists", err)
		}
		logger.Error("DirectoryService:CreateStudent:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create student", err)
	}

	logger.Info("DirectoryService:CreateStudent:Success", "student_id", student.ID)
	return dto.ToStudentResponse(student), nil
}

// CreateFaculty registers a mentor account and faculty record together
func (service *DirectoryService) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*dto.FacultyResponse, *errors.AppError) {
	logger.Info("DirectoryService:CreateFaculty:Start", "email", req.Email)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("DirectoryService:CreateFaculty:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user := &authentity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		UserType:     constants.UserTypeFaculty,
	}
	faculty := &entity.Faculty{
		Department: req.Department,
		Cabin:      req.Cabin,
	}

	if err := service.repo.CreateFaculty(ctx, user, faculty); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "A user with this email already exists", err)
		}
		logger.Error("DirectoryService:CreateFaculty:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create faculty", err)
	}

	logger.Info("DirectoryService:CreateFaculty:Success", "faculty_id", faculty.ID)
	resp := dto.ToFacultyResponse(faculty)
	resp.Name = user.Name
	resp.Email = user.Email
	return resp, nil
}

// DeleteStudent removes the student and everything hanging off them
func (service *DirectoryService) DeleteStudent(ctx context.Context, studentID uuid.UUID) *errors.AppError {
	logger.Info("DirectoryService:DeleteStudent:Start", "student_id", studentID)

	deleted, err := service.repo.DeleteStudentCascade(ctx, studentID)
	if err != nil {
		logger.Error("DirectoryService:DeleteStudent:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete student", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Student not found", nil)
	}

	logger.Info("DirectoryService:DeleteStudent:Success", "student_id", studentID)
	return nil
}

// ListMentees returns the students assigned to the calling faculty member
func (service *DirectoryService) ListMentees(ctx context.Context, facultyUserID uuid.UUID) ([]dto.StudentResponse, *errors.AppError) {
	faculty, err := service.repo.GetFacultyByUserID(ctx, facultyUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up faculty", err)
	}
	if faculty == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Faculty record not found", nil)
	}

	mentees, err := service.repo.ListMentees(ctx, faculty.ID)
	if err != nil {
		logger.Error("DirectoryService:ListMentees:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list mentees", err)
	}

	result := make([]dto.StudentResponse, 0, len(mentees))
	for i := range mentees {
		result = append(result, *dto.ToStudentWithUserResponse(&mentees[i]))
	}
	return result, nil
}

// BookingLink builds the shareable slugged URL for the calling faculty member
func (service *DirectoryService) BookingLink(ctx context.Context, facultyUserID uuid.UUID) (*dto.BookingLinkResponse, *errors.AppError) {
	faculty, err := service.repo.GetFacultyByUserID(ctx, facultyUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up faculty", err)
	}
	if faculty == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Faculty record not found", nil)
	}

	withUser, err := service.repo.GetFacultyByID(ctx, faculty.ID)
	if err != nil || withUser == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load faculty details", err)
	}

	// Slug stays stable across name collisions by carrying a short id suffix
	s := fmt.Sprintf("%s-%s", slug.Make(withUser.Name), faculty.ID.String()[:8])

	return &dto.BookingLinkResponse{
		FacultyID: faculty.ID.String(),
		Slug:      s,
		URL:       "/book/" + s,
	}, nil
}
