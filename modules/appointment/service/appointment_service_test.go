package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentorhub/core/database"
	apperrors "mentorhub/core/errors"
	"mentorhub/core/params"
	"mentorhub/modules/appointment/dto"
	"mentorhub/modules/appointment/entity"
	"mentorhub/modules/appointment/repository"
	authentity "mentorhub/modules/auth/entity"
	directoryentity "mentorhub/modules/directory/entity"
	monitoringentity "mentorhub/modules/monitoring/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===================== Fakes =====================

type fakeDB struct {
	database.IDatabase
}

func (f *fakeDB) WithinTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

type fakeApptRepo struct {
	byID        map[uuid.UUID]*entity.Appointment
	activeCount int
	obstacles   []entity.Appointment

	created       *entity.Appointment
	createErr     error
	updatedStatus *entity.Appointment
	updatedSched  *entity.Appointment
	markCompleted bool
	deleted       bool
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{byID: map[uuid.UUID]*entity.Appointment{}}
}

func (f *fakeApptRepo) Create(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.ID = uuid.New()
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	f.byID[appt.ID] = appt
	return appt, nil
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return f.byID[id], nil
}

func (f *fakeApptRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.AppointmentWithNames, error) {
	return nil, nil
}

func (f *fakeApptRepo) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]entity.AppointmentWithNames, error) {
	return nil, nil
}

func (f *fakeApptRepo) ListActiveByFaculty(ctx context.Context, facultyID uuid.UUID) ([]entity.Appointment, error) {
	return f.obstacles, nil
}

func (f *fakeApptRepo) CountActiveByStudent(ctx context.Context, studentID uuid.UUID) (int, error) {
	return f.activeCount, nil
}

func (f *fakeApptRepo) UpdateStatus(ctx context.Context, appt *entity.Appointment) error {
	f.updatedStatus = appt
	f.byID[appt.ID] = appt
	return nil
}

func (f *fakeApptRepo) UpdateSchedule(ctx context.Context, appt *entity.Appointment) error {
	f.updatedSched = appt
	f.byID[appt.ID] = appt
	return nil
}

func (f *fakeApptRepo) MarkCompletedTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error) {
	appt, ok := f.byID[id]
	if !ok || appt.Status != entity.StatusAccepted {
		return false, nil
	}
	f.markCompleted = true
	return true, nil
}

func (f *fakeApptRepo) DeletePending(ctx context.Context, id uuid.UUID, studentID uuid.UUID) (bool, error) {
	appt, ok := f.byID[id]
	if !ok || appt.StudentID != studentID || appt.Status != entity.StatusPending {
		return false, nil
	}
	delete(f.byID, id)
	f.deleted = true
	return true, nil
}

func (f *fakeApptRepo) ListHistory(ctx context.Context, filter repository.HistoryFilter, qp params.QueryParams) (*entity.PaginatedAppointments, error) {
	return &entity.PaginatedAppointments{PageNumber: qp.PageNumber, PageSize: qp.PageSize}, nil
}

func (f *fakeApptRepo) ListAcceptedBetween(ctx context.Context, from time.Time, to time.Time) ([]entity.AppointmentWithNames, error) {
	return nil, nil
}

type fakeMonitoringRepo struct {
	inserted  *monitoringentity.MonitoringSession
	insertErr error
}

func (f *fakeMonitoringRepo) InsertTx(ctx context.Context, tx *sqlx.Tx, session *monitoringentity.MonitoringSession) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	session.ID = uuid.New()
	session.CreatedAt = time.Now()
	f.inserted = session
	return nil
}

func (f *fakeMonitoringRepo) GetByID(ctx context.Context, id uuid.UUID) (*monitoringentity.MonitoringSession, error) {
	return nil, nil
}

func (f *fakeMonitoringRepo) GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*monitoringentity.MonitoringSession, error) {
	return nil, nil
}

func (f *fakeMonitoringRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]monitoringentity.MonitoringSession, error) {
	return nil, nil
}

func (f *fakeMonitoringRepo) ListByFacultyAndStudent(ctx context.Context, facultyID uuid.UUID, studentID uuid.UUID) ([]monitoringentity.MonitoringSession, error) {
	return nil, nil
}

type fakeDirectoryRepo struct {
	student *directoryentity.Student
	faculty *directoryentity.FacultyWithUser
}

func (f *fakeDirectoryRepo) CreateStudent(ctx context.Context, user *authentity.User, student *directoryentity.Student) error {
	return nil
}

func (f *fakeDirectoryRepo) CreateFaculty(ctx context.Context, user *authentity.User, faculty *directoryentity.Faculty) error {
	return nil
}

func (f *fakeDirectoryRepo) GetStudentByID(ctx context.Context, id uuid.UUID) (*directoryentity.Student, error) {
	if f.student != nil && f.student.ID == id {
		return f.student, nil
	}
	return nil, nil
}

func (f *fakeDirectoryRepo) GetStudentByUserID(ctx context.Context, userID uuid.UUID) (*directoryentity.Student, error) {
	if f.student != nil && f.student.UserID == userID {
		return f.student, nil
	}
	return nil, nil
}

func (f *fakeDirectoryRepo) GetFacultyByID(ctx context.Context, id uuid.UUID) (*directoryentity.FacultyWithUser, error) {
	if f.faculty != nil && f.faculty.ID == id {
		return f.faculty, nil
	}
	return nil, nil
}

func (f *fakeDirectoryRepo) GetFacultyByUserID(ctx context.Context, userID uuid.UUID) (*directoryentity.Faculty, error) {
	if f.faculty != nil && f.faculty.UserID == userID {
		return &f.faculty.Faculty, nil
	}
	return nil, nil
}

func (f *fakeDirectoryRepo) ListMentees(ctx context.Context, facultyID uuid.UUID) ([]directoryentity.StudentWithUser, error) {
	return nil, nil
}

func (f *fakeDirectoryRepo) DeleteStudentCascade(ctx context.Context, studentID uuid.UUID) (bool, error) {
	return false, nil
}

// ===================== Fixture =====================

type fixture struct {
	svc       *AppointmentService
	repo      *fakeApptRepo
	sessions  *fakeMonitoringRepo
	directory *fakeDirectoryRepo
	student   *directoryentity.Student
	faculty   *directoryentity.FacultyWithUser
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	student := &directoryentity.Student{ID: uuid.New(), UserID: uuid.New(), RegNo: "RA2111003010001"}
	faculty := &directoryentity.FacultyWithUser{
		Faculty: directoryentity.Faculty{ID: uuid.New(), UserID: uuid.New(), Department: "CSE"},
		Name:    "Dr. Rao",
	}

	repo := newFakeApptRepo()
	sessions := &fakeMonitoringRepo{}
	directory := &fakeDirectoryRepo{student: student, faculty: faculty}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	svc := &AppointmentService{
		db:             &fakeDB{},
		repo:           repo,
		monitoringRepo: sessions,
		directoryRepo:  directory,
		now:            func() time.Time { return now },
	}

	return &fixture{
		svc:       svc,
		repo:      repo,
		sessions:  sessions,
		directory: directory,
		student:   student,
		faculty:   faculty,
		now:       now,
	}
}

func (f *fixture) addAppointment(status entity.AppointmentStatus, start time.Time, minutes int) *entity.Appointment {
	appt := &entity.Appointment{
		ID:              uuid.New(),
		StudentID:       f.student.ID,
		FacultyID:       f.faculty.ID,
		StartAt:         start,
		DurationMinutes: minutes,
		MeetingMode:     entity.MeetingModeOnline,
		Status:          status,
	}
	f.repo.byID[appt.ID] = appt
	return appt
}

func (f *fixture) bookRequest() *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		FacultyID:       f.faculty.ID.String(),
		Date:            "2026-03-11",
		Time:            "14:00",
		DurationMinutes: 30,
		MeetingMode:     "online",
	}
}

// ===================== Booking =====================

func TestBook_Success(t *testing.T) {
	f := newFixture(t)

	resp, appErr := f.svc.Book(context.Background(), f.student.UserID, f.bookRequest())
	require.Nil(t, appErr)
	require.NotNil(t, resp)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-03-11", resp.Date)
	assert.Equal(t, "14:00", resp.Time)
	require.NotNil(t, f.repo.created)
	assert.Equal(t, f.student.ID, f.repo.created.StudentID)
}

func TestBook_RejectsSecondActiveAppointment(t *testing.T) {
	f := newFixture(t)
	f.repo.activeCount = 1

	resp, appErr := f.svc.Book(context.Background(), f.student.UserID, f.bookRequest())
	assert.Nil(t, resp)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrForbidden, appErr.Code)
	assert.Nil(t, f.repo.created, "nothing may be inserted")
}

func TestBook_RejectsConflictingSlot(t *testing.T) {
	f := newFixture(t)
	busyStart, err := time.ParseInLocation("2006-01-02 15:04", "2026-03-11 14:00", time.Local)
	require.NoError(t, err)

	other := entity.Appointment{
		ID:              uuid.New(),
		StudentID:       uuid.New(),
		FacultyID:       f.faculty.ID,
		StartAt:         busyStart,
		DurationMinutes: 60,
		Status:          entity.StatusAccepted,
	}
	f.repo.obstacles = []entity.Appointment{other}

	resp, appErr := f.svc.Book(context.Background(), f.student.UserID, f.bookRequest())
	assert.Nil(t, resp)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
}

func TestBook_TouchingSlotAllowed(t *testing.T) {
	f := newFixture(t)
	busyStart, err := time.ParseInLocation("2006-01-02 15:04", "2026-03-11 13:00", time.Local)
	require.NoError(t, err)

	// 13:00-14:00 ends exactly when the request starts
	other := entity.Appointment{
		ID:              uuid.New(),
		StudentID:       uuid.New(),
		FacultyID:       f.faculty.ID,
		StartAt:         busyStart,
		DurationMinutes: 60,
		Status:          entity.StatusAccepted,
	}
	f.repo.obstacles = []entity.Appointment{other}

	resp, appErr := f.svc.Book(context.Background(), f.student.UserID, f.bookRequest())
	require.Nil(t, appErr)
	assert.NotNil(t, resp)
}

func TestBook_OwnCancelledSlotDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	slotStart, err := time.ParseInLocation("2006-01-02 15:04", "2026-03-11 14:00", time.Local)
	require.NoError(t, err)

	mine := entity.Appointment{
		ID:              uuid.New(),
		StudentID:       f.student.ID,
		FacultyID:       f.faculty.ID,
		StartAt:         slotStart,
		DurationMinutes: 30,
		Status:          entity.StatusCancelled,
	}
	f.repo.obstacles = []entity.Appointment{mine}

	resp, appErr := f.svc.Book(context.Background(), f.student.UserID, f.bookRequest())
	require.Nil(t, appErr)
	assert.NotNil(t, resp)
}

func TestBook_RejectsPastSlot(t *testing.T) {
	f := newFixture(t)
	req := f.bookRequest()
	req.Date = "2026-03-09"

	resp, appErr := f.svc.Book(context.Background(), f.student.UserID, req)
	assert.Nil(t, resp)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestBook_RejectsInvalidMeetingMode(t *testing.T) {
	f := newFixture(t)
	req := f.bookRequest()
	req.MeetingMode = "hybrid"

	_, appErr := f.svc.Book(context.Background(), f.student.UserID, req)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

// ===================== Student cancel / remove =====================

func TestStudentCancel_PendingNeedsNoReason(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusPending, f.now.Add(24*time.Hour), 30)

	resp, appErr := f.svc.StudentCancel(context.Background(), f.student.UserID, appt.ID, &dto.CancelAppointmentRequest{})
	require.Nil(t, appErr)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "student", resp.CancelledBy)
}

func TestStudentCancel_AcceptedRequiresReason(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusAccepted, f.now.Add(24*time.Hour), 30)

	_, appErr := f.svc.StudentCancel(context.Background(), f.student.UserID, appt.ID, &dto.CancelAppointmentRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)

	resp, appErr := f.svc.StudentCancel(context.Background(), f.student.UserID, appt.ID, &dto.CancelAppointmentRequest{CancelReason: "exam clash"})
	require.Nil(t, appErr)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "exam clash", resp.CancelReason)
}

func TestStudentCancel_CompletedIsFinal(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusCompleted, f.now.Add(-24*time.Hour), 30)

	_, appErr := f.svc.StudentCancel(context.Background(), f.student.UserID, appt.ID, &dto.CancelAppointmentRequest{CancelReason: "x"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrPreconditionFailed, appErr.Code)
}

func TestStudentCancel_ForeignAppointmentReadsAsNotFound(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusPending, f.now.Add(24*time.Hour), 30)
	appt.StudentID = uuid.New()

	_, appErr := f.svc.StudentCancel(context.Background(), f.student.UserID, appt.ID, &dto.CancelAppointmentRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestRemovePending(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusPending, f.now.Add(24*time.Hour), 30)

	appErr := f.svc.RemovePending(context.Background(), f.student.UserID, appt.ID)
	require.Nil(t, appErr)
	assert.True(t, f.repo.deleted)

	// An accepted appointment cannot be removed this way
	accepted := f.addAppointment(entity.StatusAccepted, f.now.Add(24*time.Hour), 30)
	appErr = f.svc.RemovePending(context.Background(), f.student.UserID, accepted.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

// ===================== Reschedule =====================

func TestReschedule_ResetsToPending(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusAccepted, f.now.Add(24*time.Hour), 30)

	resp, appErr := f.svc.Reschedule(context.Background(), f.student.UserID, "student", appt.ID, &dto.RescheduleAppointmentRequest{
		Date:             "2026-03-12",
		Time:             "10:00",
		RescheduleReason: "mentor travel",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-03-12", resp.Date)
	assert.Equal(t, "mentor travel", resp.RescheduleReason)
	assert.NotNil(t, f.repo.updatedSched)
}

func TestReschedule_SameSlotRejected(t *testing.T) {
	f := newFixture(t)
	start, err := time.ParseInLocation("2006-01-02 15:04", "2026-03-12 10:00", time.Local)
	require.NoError(t, err)
	appt := f.addAppointment(entity.StatusPending, start, 30)

	_, appErr := f.svc.Reschedule(context.Background(), f.student.UserID, "student", appt.ID, &dto.RescheduleAppointmentRequest{
		Date:             "2026-03-12",
		Time:             "10:00",
		RescheduleReason: "moving",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestReschedule_RequiresReason(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusPending, f.now.Add(24*time.Hour), 30)

	_, appErr := f.svc.Reschedule(context.Background(), f.student.UserID, "student", appt.ID, &dto.RescheduleAppointmentRequest{
		Date: "2026-03-12",
		Time: "10:00",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestReschedule_OwnSlotDoesNotBlockItself(t *testing.T) {
	f := newFixture(t)
	start, err := time.ParseInLocation("2006-01-02 15:04", "2026-03-12 10:00", time.Local)
	require.NoError(t, err)
	appt := f.addAppointment(entity.StatusAccepted, start, 60)
	f.repo.obstacles = []entity.Appointment{*appt}

	// Shifting 30 minutes into my own current window
	resp, appErr := f.svc.Reschedule(context.Background(), f.student.UserID, "student", appt.ID, &dto.RescheduleAppointmentRequest{
		Date:             "2026-03-12",
		Time:             "10:30",
		RescheduleReason: "running late",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "pending", resp.Status)
}

// ===================== Faculty status updates =====================

func TestUpdateStatus_Accept(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusPending, f.now.Add(24*time.Hour), 30)

	resp, appErr := f.svc.UpdateStatus(context.Background(), f.faculty.UserID, appt.ID, &dto.UpdateStatusRequest{Status: "accepted"})
	require.Nil(t, appErr)
	assert.Equal(t, "accepted", resp.Status)
}

func TestUpdateStatus_AcceptTwiceFails(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusAccepted, f.now.Add(24*time.Hour), 30)

	_, appErr := f.svc.UpdateStatus(context.Background(), f.faculty.UserID, appt.ID, &dto.UpdateStatusRequest{Status: "accepted"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrPreconditionFailed, appErr.Code)
}

func TestUpdateStatus_CancelRequiresReason(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusAccepted, f.now.Add(24*time.Hour), 30)

	_, appErr := f.svc.UpdateStatus(context.Background(), f.faculty.UserID, appt.ID, &dto.UpdateStatusRequest{Status: "cancelled"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)

	resp, appErr := f.svc.UpdateStatus(context.Background(), f.faculty.UserID, appt.ID, &dto.UpdateStatusRequest{
		Status:       "cancelled",
		CancelReason: "out of office",
	})
	require.Nil(t, appErr)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "faculty", resp.CancelledBy)
}

func TestUpdateStatus_FailOnlyFromAccepted(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusPending, f.now.Add(24*time.Hour), 30)

	_, appErr := f.svc.UpdateStatus(context.Background(), f.faculty.UserID, appt.ID, &dto.UpdateStatusRequest{
		Status:       "failed",
		CancelReason: "no-show",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrPreconditionFailed, appErr.Code)
}

func TestUpdateStatus_CompletedNeedsHighPoints(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusAccepted, f.now.Add(-2*time.Hour), 30)

	_, appErr := f.svc.UpdateStatus(context.Background(), f.faculty.UserID, appt.ID, &dto.UpdateStatusRequest{Status: "completed"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusPending, f.now.Add(24*time.Hour), 30)

	_, appErr := f.svc.UpdateStatus(context.Background(), f.faculty.UserID, appt.ID, &dto.UpdateStatusRequest{Status: "archived"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

// ===================== Completion =====================

func TestComplete_RejectsBeforeEnd(t *testing.T) {
	f := newFixture(t)
	// Ends at 12:30, now is 12:00
	appt := f.addAppointment(entity.StatusAccepted, f.now, 30)

	_, appErr := f.svc.Complete(context.Background(), f.faculty.UserID, appt.ID, &dto.CompleteAppointmentRequest{HighPoints: "notes"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrTooEarly, appErr.Code)
	assert.Nil(t, f.sessions.inserted, "no session may be recorded")
}

func TestComplete_AllowedExactlyAtEnd(t *testing.T) {
	f := newFixture(t)
	// Ends exactly at now
	appt := f.addAppointment(entity.StatusAccepted, f.now.Add(-30*time.Minute), 30)

	resp, appErr := f.svc.Complete(context.Background(), f.faculty.UserID, appt.ID, &dto.CompleteAppointmentRequest{HighPoints: "covered project scope"})
	require.Nil(t, appErr)
	require.NotNil(t, resp)

	assert.True(t, f.repo.markCompleted)
	require.NotNil(t, f.sessions.inserted)
	assert.Equal(t, appt.ID, f.sessions.inserted.AppointmentID)
	assert.Equal(t, "covered project scope", f.sessions.inserted.HighPoints)
	assert.NotEmpty(t, resp.RefCode)

	// Monitoring date is the appointment's calendar day
	start := appt.StartAt
	wantDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	assert.Equal(t, wantDate, f.sessions.inserted.DateOfMonitoring)
}

func TestComplete_RequiresHighPoints(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusAccepted, f.now.Add(-2*time.Hour), 30)

	_, appErr := f.svc.Complete(context.Background(), f.faculty.UserID, appt.ID, &dto.CompleteAppointmentRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInvalidInput, appErr.Code)
}

func TestComplete_OnlyFromAccepted(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusPending, f.now.Add(-2*time.Hour), 30)

	_, appErr := f.svc.Complete(context.Background(), f.faculty.UserID, appt.ID, &dto.CompleteAppointmentRequest{HighPoints: "notes"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrPreconditionFailed, appErr.Code)
}

func TestComplete_SessionInsertFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	appt := f.addAppointment(entity.StatusAccepted, f.now.Add(-2*time.Hour), 30)
	f.sessions.insertErr = errors.New("disk full")

	_, appErr := f.svc.Complete(context.Background(), f.faculty.UserID, appt.ID, &dto.CompleteAppointmentRequest{HighPoints: "notes"})
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrInternalServer, appErr.Code)
	assert.Nil(t, f.sessions.inserted)
}
