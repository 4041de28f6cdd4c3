package service

import (
	"context"
	"fmt"
	"time"

	"mentorhub/core/constants"
	"mentorhub/core/database"
	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/params"
	"mentorhub/core/utils"
	"mentorhub/modules/appointment/dto"
	"mentorhub/modules/appointment/entity"
	"mentorhub/modules/appointment/repository"
	directoryentity "mentorhub/modules/directory/entity"
	directoryrepo "mentorhub/modules/directory/repository"
	monitoringentity "mentorhub/modules/monitoring/entity"
	monitoringrepo "mentorhub/modules/monitoring/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Notifier delivers appointment event notifications to a user. Delivery is
// best effort and never fails the request.
type Notifier interface {
	NotifyAppointmentEvent(ctx context.Context, userID uuid.UUID, event string, appt *entity.Appointment)
}

// AppointmentService owns the appointment lifecycle: booking, status
// transitions, rescheduling, completion and the monitoring-session insert
type AppointmentService struct {
	db             database.IDatabase
	repo           repository.AppointmentRepositoryInterface
	monitoringRepo monitoringrepo.MonitoringRepositoryInterface
	directoryRepo  directoryrepo.DirectoryRepositoryInterface
	notifier       Notifier
	now            func() time.Time
}

// AppointmentServiceInterface defines the service contract
type AppointmentServiceInterface interface {
	Book(ctx context.Context, studentUserID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError)
	GetMine(ctx context.Context, studentUserID uuid.UUID) ([]dto.AppointmentResponse, *errors.AppError)
	GetRequests(ctx context.Context, facultyUserID uuid.UUID) ([]dto.AppointmentResponse, *errors.AppError)
	StudentCancel(ctx context.Context, studentUserID uuid.UUID, apptID uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError)
	RemovePending(ctx context.Context, studentUserID uuid.UUID, apptID uuid.UUID) *errors.AppError
	Reschedule(ctx context.Context, userID uuid.UUID, userType string, apptID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError)
	UpdateStatus(ctx context.Context, facultyUserID uuid.UUID, apptID uuid.UUID, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, *errors.AppError)
	Complete(ctx context.Context, facultyUserID uuid.UUID, apptID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.CompleteAppointmentResponse, *errors.AppError)
	History(ctx context.Context, userID uuid.UUID, userType string, status string, date string, qp params.QueryParams) (*dto.PaginatedAppointmentResponse, *errors.AppError)
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	db database.IDatabase,
	repo repository.AppointmentRepositoryInterface,
	monitoringRepo monitoringrepo.MonitoringRepositoryInterface,
	directoryRepo directoryrepo.DirectoryRepositoryInterface,
	notifier Notifier,
) AppointmentServiceInterface {
	return &AppointmentService{
		db:             db,
		repo:           repo,
		monitoringRepo: monitoringRepo,
		directoryRepo:  directoryRepo,
		notifier:       notifier,
		now:            time.Now,
	}
}

// ===================== Booking =====================

// Book creates a pending appointment for the calling student. The guards run
// in order: field validation, active-appointment cap, slot conflict, insert.
// The partial unique index and the exclusion constraint re-check the last two
// at commit, so a racing second request loses cleanly.
func (s *AppointmentService) Book(ctx context.Context, studentUserID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError) {
	logger.Info("AppointmentService:Book:Start", "user_id", studentUserID)

	facultyID, err := uuid.Parse(req.FacultyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid faculty id", err)
	}
	if req.DurationMinutes <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Duration must be a positive number of minutes", nil)
	}
	mode := entity.MeetingMode(req.MeetingMode)
	if !mode.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Meeting mode must be online or offline", nil)
	}

	startAt, err := utils.CombineDateTime(req.Date, req.Time)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date or time format", err)
	}
	if startAt.Before(s.now()) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Appointment time cannot be in the past", nil)
	}

	student, err := s.directoryRepo.GetStudentByUserID(ctx, studentUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve student record", err)
	}
	if student == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Student record not found", nil)
	}

	faculty, err := s.directoryRepo.GetFacultyByID(ctx, facultyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve faculty record", err)
	}
	if faculty == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Faculty not found", nil)
	}

	active, err := s.repo.CountActiveByStudent(ctx, student.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing appointments", err)
	}
	if active > 0 {
		return nil, errors.NewAppError(errors.ErrForbidden, "You already have an active appointment. Cancel or complete it before booking another.", nil)
	}

	obstacles, err := s.repo.ListActiveByFaculty(ctx, facultyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check faculty schedule", err)
	}
	conflict := FindConflict(obstacles, startAt, req.DurationMinutes, ConflictOptions{
		ExcludeStudentStatus: &StudentStatusExclusion{StudentID: student.ID, Status: entity.StatusCancelled},
	})
	if conflict != nil {
		return nil, errors.NewAppError(errors.ErrConflict, "This slot is already booked for the selected faculty", nil)
	}

	appt := &entity.Appointment{
		StudentID:       student.ID,
		FacultyID:       facultyID,
		StartAt:         startAt,
		DurationMinutes: req.DurationMinutes,
		MeetingMode:     mode,
		Location:        req.Location,
		Message:         req.Message,
		Status:          entity.StatusPending,
	}

	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.NewAppError(errors.ErrForbidden, "You already have an active appointment. Cancel or complete it before booking another.", err)
		}
		if database.IsExclusionViolation(err) {
			return nil, errors.NewAppError(errors.ErrConflict, "This slot is already booked for the selected faculty", err)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to book appointment", err)
	}

	s.notify(ctx, faculty.UserID, "booked", created)

	logger.Info("AppointmentService:Book:Success", "appointment_id", created.ID)
	return dto.ToAppointmentResponse(created), nil
}

// ===================== Listing =====================

func (s *AppointmentService) GetMine(ctx context.Context, studentUserID uuid.UUID) ([]dto.AppointmentResponse, *errors.AppError) {
	student, err := s.directoryRepo.GetStudentByUserID(ctx, studentUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve student record", err)
	}
	if student == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Student record not found", nil)
	}

	appts, err := s.repo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list appointments", err)
	}

	result := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		result = append(result, *dto.ToAppointmentWithNamesResponse(&appts[i]))
	}
	return result, nil
}

func (s *AppointmentService) GetRequests(ctx context.Context, facultyUserID uuid.UUID) ([]dto.AppointmentResponse, *errors.AppError) {
	faculty, err := s.directoryRepo.GetFacultyByUserID(ctx, facultyUserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve faculty record", err)
	}
	if faculty == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Faculty record not found", nil)
	}

	appts, err := s.repo.ListByFaculty(ctx, faculty.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list appointments", err)
	}

	result := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		result = append(result, *dto.ToAppointmentWithNamesResponse(&appts[i]))
	}
	return result, nil
}

// ===================== Student cancel / remove =====================

// StudentCancel cancels the caller's own appointment. A reason is required
// once the appointment has been accepted; a pending one may be cancelled
// without one.
func (s *AppointmentService) StudentCancel(ctx context.Context, studentUserID uuid.UUID, apptID uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError) {
	student, appt, appErr := s.getOwnedByStudent(ctx, studentUserID, apptID)
	if appErr != nil {
		return nil, appErr
	}

	if _, err := entity.Transition(appt.Status, entity.ActionCancel); err != nil {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, transitionMessage(err), err)
	}

	if appt.Status == entity.StatusAccepted && req.CancelReason == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Cancel reason is required for an accepted appointment", nil)
	}

	cancelledBy := entity.CancelledByStudent
	appt.Status = entity.StatusCancelled
	appt.CancelledBy = &cancelledBy
	if req.CancelReason != "" {
		appt.CancelReason = &req.CancelReason
	}

	if err := s.repo.UpdateStatus(ctx, appt); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to cancel appointment", err)
	}

	s.notifyFaculty(ctx, appt, "cancelled")

	logger.Info("AppointmentService:StudentCancel:Success", "appointment_id", appt.ID, "student_id", student.ID)
	return dto.ToAppointmentResponse(appt), nil
}

// RemovePending deletes a still-pending appointment of the calling student.
// No reason needed: nothing was agreed yet.
func (s *AppointmentService) RemovePending(ctx context.Context, studentUserID uuid.UUID, apptID uuid.UUID) *errors.AppError {
	student, err := s.directoryRepo.GetStudentByUserID(ctx, studentUserID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to resolve student record", err)
	}
	if student == nil {
		return errors.NewAppError(errors.ErrNotFound, "Student record not found", nil)
	}

	removed, err := s.repo.DeletePending(ctx, apptID, student.ID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove appointment", err)
	}
	if !removed {
		return errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}

	return nil
}

// ===================== Reschedule =====================

// Reschedule moves an appointment to a new slot and resets it to pending.
// Either owner side may call it; ownership mismatches read as not-found.
func (s *AppointmentService) Reschedule(ctx context.Context, userID uuid.UUID, userType string, apptID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, *errors.AppError) {
	appt, appErr := s.getOwned(ctx, userID, userType, apptID)
	if appErr != nil {
		return nil, appErr
	}

	if _, err := entity.Transition(appt.Status, entity.ActionReschedule); err != nil {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, transitionMessage(err), err)
	}

	if req.RescheduleReason == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Reschedule reason is required", nil)
	}

	newStart, err := utils.CombineDateTime(req.Date, req.Time)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date or time format", err)
	}
	if newStart.Equal(appt.StartAt) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "No changes detected in date or time", nil)
	}
	if newStart.Before(s.now()) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Appointment time cannot be in the past", nil)
	}

	obstacles, err := s.repo.ListActiveByFaculty(ctx, appt.FacultyID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check faculty schedule", err)
	}
	conflict := FindConflict(obstacles, newStart, appt.DurationMinutes, ConflictOptions{
		ExcludeAppointmentID: appt.ID,
	})
	if conflict != nil {
		return nil, errors.NewAppError(errors.ErrConflict, "The new slot is already booked for this faculty", nil)
	}

	appt.StartAt = newStart
	appt.Status = entity.StatusPending
	appt.RescheduleReason = &req.RescheduleReason

	if err := s.repo.UpdateSchedule(ctx, appt); err != nil {
		if database.IsExclusionViolation(err) {
			return nil, errors.NewAppError(errors.ErrConflict, "The new slot is already booked for this faculty", err)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to reschedule appointment", err)
	}

	if userType == constants.UserTypeFaculty {
		s.notifyStudent(ctx, appt, "rescheduled")
	} else {
		s.notifyFaculty(ctx, appt, "rescheduled")
	}

	logger.Info("AppointmentService:Reschedule:Success", "appointment_id", appt.ID, "start_at", newStart)
	return dto.ToAppointmentResponse(appt), nil
}

// ===================== Faculty status transitions =====================

// UpdateStatus applies a faculty-side lifecycle action: accept, cancel, fail
// or complete. Completion is delegated so the monitoring note is always
// recorded in the same transaction.
func (s *AppointmentService) UpdateStatus(ctx context.Context, facultyUserID uuid.UUID, apptID uuid.UUID, req *dto.UpdateStatusRequest) (*dto.AppointmentResponse, *errors.AppError) {
	switch entity.AppointmentStatus(req.Status) {
	case entity.StatusAccepted:
		return s.accept(ctx, facultyUserID, apptID)
	case entity.StatusCancelled:
		return s.facultyClose(ctx, facultyUserID, apptID, entity.ActionCancel, req.CancelReason)
	case entity.StatusFailed:
		return s.facultyClose(ctx, facultyUserID, apptID, entity.ActionFail, req.CancelReason)
	case entity.StatusCompleted:
		if req.HighPoints == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "A completion note (high_points) is required to complete an appointment", nil)
		}
		result, appErr := s.Complete(ctx, facultyUserID, apptID, &dto.CompleteAppointmentRequest{HighPoints: req.HighPoints})
		if appErr != nil {
			return nil, appErr
		}
		appt, err := s.repo.GetByID(ctx, apptID)
		if err != nil || appt == nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to reload appointment", err)
		}
		logger.Info("AppointmentService:UpdateStatus:Completed", "appointment_id", apptID, "monitoring_session_id", result.MonitoringSessionID)
		return dto.ToAppointmentResponse(appt), nil
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Status must be one of accepted, cancelled, failed, completed", nil)
	}
}

func (s *AppointmentService) accept(ctx context.Context, facultyUserID uuid.UUID, apptID uuid.UUID) (*dto.AppointmentResponse, *errors.AppError) {
	_, appt, appErr := s.getOwnedByFaculty(ctx, facultyUserID, apptID)
	if appErr != nil {
		return nil, appErr
	}

	next, err := entity.Transition(appt.Status, entity.ActionAccept)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, transitionMessage(err), err)
	}

	appt.Status = next
	if err := s.repo.UpdateStatus(ctx, appt); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to accept appointment", err)
	}

	s.notifyStudent(ctx, appt, "accepted")
	return dto.ToAppointmentResponse(appt), nil
}

// facultyClose handles the cancel and fail actions, both of which require a
// reason and record the faculty as the closing side
func (s *AppointmentService) facultyClose(ctx context.Context, facultyUserID uuid.UUID, apptID uuid.UUID, action entity.Action, reason string) (*dto.AppointmentResponse, *errors.AppError) {
	_, appt, appErr := s.getOwnedByFaculty(ctx, facultyUserID, apptID)
	if appErr != nil {
		return nil, appErr
	}

	next, err := entity.Transition(appt.Status, action)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, transitionMessage(err), err)
	}

	if reason == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "A reason is required", nil)
	}

	cancelledBy := entity.CancelledByFaculty
	appt.Status = next
	appt.CancelledBy = &cancelledBy
	appt.CancelReason = &reason

	if err := s.repo.UpdateStatus(ctx, appt); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update appointment", err)
	}

	s.notifyStudent(ctx, appt, string(appt.Status))
	return dto.ToAppointmentResponse(appt), nil
}

// ===================== Completion =====================

// Complete closes out an accepted appointment once its window has elapsed,
// inserting the monitoring session in the same transaction as the status
// update. If either write fails, neither is committed.
func (s *AppointmentService) Complete(ctx context.Context, facultyUserID uuid.UUID, apptID uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.CompleteAppointmentResponse, *errors.AppError) {
	logger.Info("AppointmentService:Complete:Start", "appointment_id", apptID)

	_, appt, appErr := s.getOwnedByFaculty(ctx, facultyUserID, apptID)
	if appErr != nil {
		return nil, appErr
	}

	if _, err := entity.Transition(appt.Status, entity.ActionComplete); err != nil {
		return nil, errors.NewAppError(errors.ErrPreconditionFailed, transitionMessage(err), err)
	}

	if req.HighPoints == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "A completion note (high_points) is required", nil)
	}

	now := s.now()
	if !appt.IsOver(now) {
		remaining := appt.EndAt().Sub(now).Round(time.Minute)
		msg := fmt.Sprintf("Appointment is not over yet. It ends at %s (%s remaining).",
			appt.EndAt().Format("2006-01-02 15:04"), remaining)
		return nil, errors.NewAppError(errors.ErrTooEarly, msg, nil)
	}

	start := appt.StartAt
	session := &monitoringentity.MonitoringSession{
		RefCode:          utils.GenerateID(),
		AppointmentID:    appt.ID,
		StudentID:        appt.StudentID,
		FacultyID:        appt.FacultyID,
		DateOfMonitoring: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		HighPoints:       req.HighPoints,
	}

	err := s.db.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		completed, err := s.repo.MarkCompletedTx(ctx, tx, appt.ID)
		if err != nil {
			return err
		}
		if !completed {
			return entity.ErrNotAccepted
		}
		return s.monitoringRepo.InsertTx(ctx, tx, session)
	})
	if err != nil {
		if err == entity.ErrNotAccepted {
			return nil, errors.NewAppError(errors.ErrPreconditionFailed, "Only accepted appointments can be completed", err)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to complete appointment", err)
	}

	appt.Status = entity.StatusCompleted
	s.notifyStudent(ctx, appt, "completed")

	logger.Info("AppointmentService:Complete:Success",
		"appointment_id", appt.ID,
		"monitoring_session_id", session.ID,
	)

	return &dto.CompleteAppointmentResponse{
		AppointmentID:       appt.ID.String(),
		MonitoringSessionID: session.ID.String(),
		RefCode:             session.RefCode,
	}, nil
}

// ===================== History =====================

func (s *AppointmentService) History(ctx context.Context, userID uuid.UUID, userType string, status string, date string, qp params.QueryParams) (*dto.PaginatedAppointmentResponse, *errors.AppError) {
	filter := repository.HistoryFilter{}

	switch userType {
	case constants.UserTypeStudent:
		student, err := s.directoryRepo.GetStudentByUserID(ctx, userID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve student record", err)
		}
		if student == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "Student record not found", nil)
		}
		filter.StudentID = student.ID
	case constants.UserTypeFaculty:
		faculty, err := s.directoryRepo.GetFacultyByUserID(ctx, userID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve faculty record", err)
		}
		if faculty == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "Faculty record not found", nil)
		}
		filter.FacultyID = faculty.ID
	default:
		return nil, errors.NewAppError(errors.ErrForbidden, "History is available to students and faculty only", nil)
	}

	if status != "" {
		st := entity.AppointmentStatus(status)
		if !st.IsTerminal() {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "History can only be filtered by a terminal status (completed, cancelled, failed)", nil)
		}
		filter.Status = st
	}
	if date != "" {
		d, err := time.ParseInLocation(utils.DateLayout, date, time.Local)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid date filter, expected YYYY-MM-DD", err)
		}
		filter.Date = &d
	}

	page, err := s.repo.ListHistory(ctx, filter, qp)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list appointment history", err)
	}

	return dto.ToPaginatedAppointmentResponse(page), nil
}

// ===================== Ownership helpers =====================

// getOwnedByStudent loads the appointment and verifies the caller's student
// record owns it. Mismatches surface as not-found so the response never
// leaks whether the appointment exists.
func (s *AppointmentService) getOwnedByStudent(ctx context.Context, studentUserID uuid.UUID, apptID uuid.UUID) (*directoryentity.Student, *entity.Appointment, *errors.AppError) {
	student, err := s.directoryRepo.GetStudentByUserID(ctx, studentUserID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve student record", err)
	}
	if student == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}

	appt, err := s.repo.GetByID(ctx, apptID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load appointment", err)
	}
	if appt == nil || appt.StudentID != student.ID {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}

	return student, appt, nil
}

func (s *AppointmentService) getOwnedByFaculty(ctx context.Context, facultyUserID uuid.UUID, apptID uuid.UUID) (*directoryentity.Faculty, *entity.Appointment, *errors.AppError) {
	faculty, err := s.directoryRepo.GetFacultyByUserID(ctx, facultyUserID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to resolve faculty record", err)
	}
	if faculty == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}

	appt, err := s.repo.GetByID(ctx, apptID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load appointment", err)
	}
	if appt == nil || appt.FacultyID != faculty.ID {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}

	return faculty, appt, nil
}

// getOwned resolves ownership for either side, used by reschedule
func (s *AppointmentService) getOwned(ctx context.Context, userID uuid.UUID, userType string, apptID uuid.UUID) (*entity.Appointment, *errors.AppError) {
	switch userType {
	case constants.UserTypeStudent:
		_, appt, appErr := s.getOwnedByStudent(ctx, userID, apptID)
		return appt, appErr
	case constants.UserTypeFaculty:
		_, appt, appErr := s.getOwnedByFaculty(ctx, userID, apptID)
		return appt, appErr
	default:
		return nil, errors.NewAppError(errors.ErrNotFound, "Appointment not found", nil)
	}
}

// ===================== Notifications =====================

func (s *AppointmentService) notify(ctx context.Context, userID uuid.UUID, event string, appt *entity.Appointment) {
	if s.notifier == nil {
		return
	}
	s.notifier.NotifyAppointmentEvent(ctx, userID, event, appt)
}

func (s *AppointmentService) notifyStudent(ctx context.Context, appt *entity.Appointment, event string) {
	if s.notifier == nil {
		return
	}
	student, err := s.directoryRepo.GetStudentByID(ctx, appt.StudentID)
	if err != nil || student == nil {
		logger.Warn("AppointmentService:notifyStudent:ResolveFailed", "student_id", appt.StudentID)
		return
	}
	s.notifier.NotifyAppointmentEvent(ctx, student.UserID, event, appt)
}

func (s *AppointmentService) notifyFaculty(ctx context.Context, appt *entity.Appointment, event string) {
	if s.notifier == nil {
		return
	}
	faculty, err := s.directoryRepo.GetFacultyByID(ctx, appt.FacultyID)
	if err != nil || faculty == nil {
		logger.Warn("AppointmentService:notifyFaculty:ResolveFailed", "faculty_id", appt.FacultyID)
		return
	}
	s.notifier.NotifyAppointmentEvent(ctx, faculty.UserID, event, appt)
}

// transitionMessage turns a state-machine error into the user-facing reason
func transitionMessage(err error) string {
	switch err {
	case entity.ErrTerminalState:
		return "This appointment is already finalized and cannot be changed"
	case entity.ErrNotAccepted:
		return "Only accepted appointments can be completed"
	case entity.ErrNotPending:
		return "Only pending appointments can be accepted"
	default:
		return err.Error()
	}
}
