package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	apperrors "mentorhub/core/errors"
	"mentorhub/core/params"
	"mentorhub/modules/notification/dto"
	"mentorhub/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationService struct {
	created   *dto.CreateNotificationRequest
	createErr error
}

func (f *fakeNotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = req
	return nil
}

func (f *fakeNotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, qp params.QueryParams) (*entity.PaginatedNotificationEntity, *apperrors.AppError) {
	return nil, nil
}

func (f *fakeNotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *apperrors.AppError {
	return nil
}

func (f *fakeNotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *apperrors.AppError {
	return nil
}

func (f *fakeNotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *apperrors.AppError) {
	return 0, nil
}

func TestHandleAppointmentNotify_PersistsNotification(t *testing.T) {
	svc := &fakeNotificationService{}
	handler := NewHandler(svc)

	payload := &AppointmentNotifyPayload{
		UserID:        uuid.New(),
		Event:         "accepted",
		AppointmentID: uuid.New(),
		StartAt:       time.Date(2026, 3, 11, 14, 0, 0, 0, time.Local),
		MeetingMode:   "online",
	}
	task, err := NewAppointmentNotifyTask(payload)
	require.NoError(t, err)

	err = handler.HandleAppointmentNotify(context.Background(), task)
	require.NoError(t, err)

	require.NotNil(t, svc.created)
	assert.Equal(t, payload.UserID, svc.created.UserID)
	assert.Equal(t, "Appointment accepted", svc.created.Title)
	assert.Equal(t, entity.TypeAppointmentAccepted, svc.created.Type)
	assert.Equal(t, payload.AppointmentID.String(), svc.created.Data["appointment_id"])
}

func TestHandleAppointmentNotify_BadPayloadSkipsRetry(t *testing.T) {
	handler := NewHandler(&fakeNotificationService{})

	task := asynq.NewTask("appointment:notify", []byte("{not json"))
	err := handler.HandleAppointmentNotify(context.Background(), task)
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleAppointmentNotify_ServiceFailureRetries(t *testing.T) {
	svc := &fakeNotificationService{createErr: errors.New("store down")}
	handler := NewHandler(svc)

	payload := &AppointmentNotifyPayload{UserID: uuid.New(), Event: "booked", AppointmentID: uuid.New(), StartAt: time.Now()}
	task, err := NewAppointmentNotifyTask(payload)
	require.NoError(t, err)

	err = handler.HandleAppointmentNotify(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestDescribeEvent(t *testing.T) {
	start := time.Date(2026, 3, 11, 9, 30, 0, 0, time.Local)

	cases := []struct {
		event     string
		wantTitle string
		wantType  string
	}{
		{"booked", "New appointment request", entity.TypeAppointmentBooked},
		{"cancelled", "Appointment cancelled", entity.TypeAppointmentCancelled},
		{"failed", "Appointment marked as failed", entity.TypeAppointmentFailed},
		{"completed", "Appointment completed", entity.TypeAppointmentCompleted},
		{"rescheduled", "Appointment rescheduled", entity.TypeAppointmentRescheduled},
		{"reminder", "Appointment today", entity.TypeAppointmentReminder},
	}
	for _, tc := range cases {
		t.Run(tc.event, func(t *testing.T) {
			title, message, notifType := describeEvent(&AppointmentNotifyPayload{Event: tc.event, StartAt: start})
			assert.Equal(t, tc.wantTitle, title)
			assert.Equal(t, tc.wantType, notifType)
			assert.NotEmpty(t, message)
		})
	}
}

func TestDescribeEvent_ReminderUsesTimeOfDay(t *testing.T) {
	start := time.Date(2026, 3, 11, 9, 30, 0, 0, time.Local)
	_, message, _ := describeEvent(&AppointmentNotifyPayload{Event: "reminder", StartAt: start})
	assert.Contains(t, message, "09:30")
}

func TestAppointmentNotifyTask_RoundTrip(t *testing.T) {
	payload := &AppointmentNotifyPayload{
		UserID:        uuid.New(),
		Event:         "booked",
		AppointmentID: uuid.New(),
		StartAt:       time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC),
		MeetingMode:   "offline",
		Location:      "Cabin 12",
	}
	task, err := NewAppointmentNotifyTask(payload)
	require.NoError(t, err)
	assert.Equal(t, "appointment:notify", task.Type())

	var decoded AppointmentNotifyPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload.UserID, decoded.UserID)
	assert.Equal(t, "Cabin 12", decoded.Location)
}
