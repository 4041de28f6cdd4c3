package queue

import (
	"context"

	"mentorhub/core/logger"
	apptentity "mentorhub/modules/appointment/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Producer enqueues notification tasks. It backs the appointment module's
// Notifier dependency, so delivery failures are logged and swallowed.
type Producer struct {
	client *asynq.Client
}

func NewProducer(client *asynq.Client) *Producer {
	return &Producer{client: client}
}

func (p *Producer) NotifyAppointmentEvent(ctx context.Context, userID uuid.UUID, event string, appt *apptentity.Appointment) {
	if p.client == nil || appt == nil {
		return
	}

	task, err := NewAppointmentNotifyTask(&AppointmentNotifyPayload{
		UserID:        userID,
		Event:         event,
		AppointmentID: appt.ID,
		StartAt:       appt.StartAt,
		MeetingMode:   string(appt.MeetingMode),
		Location:      appt.Location,
	})
	if err != nil {
		logger.Error("NotificationQueue:NotifyAppointmentEvent:BuildTask:Error:", err)
		return
	}

	if _, err := p.client.EnqueueContext(ctx, task); err != nil {
		logger.Error("NotificationQueue:NotifyAppointmentEvent:Enqueue:Error:", err)
		return
	}

	logger.Info("NotificationQueue:NotifyAppointmentEvent:Enqueued",
		"user_id", userID, "event", event, "appointment_id", appt.ID)
}
