package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentorhub/core/constants"
	"mentorhub/core/logger"
	"mentorhub/modules/notification/dto"
	"mentorhub/modules/notification/entity"
	"mentorhub/modules/notification/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// AppointmentNotifyPayload is the task body for appointment event notifications
type AppointmentNotifyPayload struct {
	UserID        uuid.UUID `json:"user_id"`
	Event         string    `json:"event"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	StartAt       time.Time `json:"start_at"`
	MeetingMode   string    `json:"meeting_mode"`
	Location      string    `json:"location,omitempty"`
}

// NewAppointmentNotifyTask builds the asynq task for an appointment event
func NewAppointmentNotifyTask(payload *AppointmentNotifyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskTypeAppointmentNotify, data, asynq.MaxRetry(3)), nil
}

// Handler consumes notification tasks and persists them as notification rows
type Handler struct {
	svc service.NotificationServiceInterface
}

func NewHandler(svc service.NotificationServiceInterface) *Handler {
	return &Handler{svc: svc}
}

// HandleAppointmentNotify processes one appointment:notify task
func (h *Handler) HandleAppointmentNotify(ctx context.Context, t *asynq.Task) error {
	var payload AppointmentNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("NotificationQueue:HandleAppointmentNotify:Unmarshal:Error:", err)
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	title, message, notifType := describeEvent(&payload)

	err := h.svc.Create(ctx, &dto.CreateNotificationRequest{
		UserID:  payload.UserID,
		Title:   title,
		Message: message,
		Type:    notifType,
		Data: map[string]interface{}{
			"appointment_id": payload.AppointmentID.String(),
			"event":          payload.Event,
			"start_at":       payload.StartAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		logger.Error("NotificationQueue:HandleAppointmentNotify:Create:Error:", err)
		return err
	}

	logger.Info("NotificationQueue:HandleAppointmentNotify:Done",
		"user_id", payload.UserID, "event", payload.Event, "appointment_id", payload.AppointmentID)
	return nil
}

// describeEvent maps an appointment event to the stored title and message
func describeEvent(p *AppointmentNotifyPayload) (title string, message string, notifType string) {
	when := p.StartAt.Format("Mon, 02 Jan 2006 at 15:04")

	switch p.Event {
	case "booked":
		return "New appointment request",
			fmt.Sprintf("A student requested an appointment on %s.", when),
			entity.TypeAppointmentBooked
	case "accepted":
		return "Appointment accepted",
			fmt.Sprintf("Your appointment on %s has been accepted.", when),
			entity.TypeAppointmentAccepted
	case "cancelled":
		return "Appointment cancelled",
			fmt.Sprintf("The appointment on %s was cancelled.", when),
			entity.TypeAppointmentCancelled
	case "failed":
		return "Appointment marked as failed",
			fmt.Sprintf("The appointment on %s was marked as failed.", when),
			entity.TypeAppointmentFailed
	case "completed":
		return "Appointment completed",
			fmt.Sprintf("Your appointment on %s was completed and recorded.", when),
			entity.TypeAppointmentCompleted
	case "rescheduled":
		return "Appointment rescheduled",
			fmt.Sprintf("The appointment was moved to %s and awaits approval.", when),
			entity.TypeAppointmentRescheduled
	case "reminder":
		return "Appointment today",
			fmt.Sprintf("Reminder: you have an appointment today at %s.", p.StartAt.Format("15:04")),
			entity.TypeAppointmentReminder
	default:
		return "Appointment update",
			fmt.Sprintf("The appointment on %s was updated.", when),
			p.Event
	}
}
