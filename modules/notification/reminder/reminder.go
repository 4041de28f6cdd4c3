package reminder

import (
	"context"
	"time"

	"mentorhub/core/logger"
	apptrepo "mentorhub/modules/appointment/repository"
	apptservice "mentorhub/modules/appointment/service"
	directoryrepo "mentorhub/modules/directory/repository"

	"github.com/robfig/cron/v3"
)

// Reminder runs a daily cron job that notifies both parties of every
// accepted appointment starting today
type Reminder struct {
	engine        *cron.Cron
	spec          string
	apptRepo      apptrepo.AppointmentRepositoryInterface
	directoryRepo directoryrepo.DirectoryRepositoryInterface
	notifier      apptservice.Notifier
}

func NewReminder(
	spec string,
	apptRepo apptrepo.AppointmentRepositoryInterface,
	directoryRepo directoryrepo.DirectoryRepositoryInterface,
	notifier apptservice.Notifier,
) *Reminder {
	return &Reminder{
		engine:        cron.New(cron.WithLocation(time.Local)),
		spec:          spec,
		apptRepo:      apptRepo,
		directoryRepo: directoryRepo,
		notifier:      notifier,
	}
}

// Start registers the job and starts the cron engine
func (r *Reminder) Start() error {
	_, err := r.engine.AddFunc(r.spec, r.run)
	if err != nil {
		return err
	}

	r.engine.Start()
	logger.Info("Reminder:Start", "spec", r.spec)
	return nil
}

// Stop halts the cron engine and waits for a running job to finish
func (r *Reminder) Stop() {
	ctx := r.engine.Stop()
	<-ctx.Done()
}

func (r *Reminder) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	appts, err := r.apptRepo.ListAcceptedBetween(ctx, from, to)
	if err != nil {
		logger.Error("Reminder:Run:ListAcceptedBetween:Error:", err)
		return
	}

	logger.Info("Reminder:Run", "date", from.Format("2006-01-02"), "count", len(appts))

	for i := range appts {
		appt := &appts[i].Appointment

		student, err := r.directoryRepo.GetStudentByID(ctx, appt.StudentID)
		if err == nil && student != nil {
			r.notifier.NotifyAppointmentEvent(ctx, student.UserID, "reminder", appt)
		}

		faculty, err := r.directoryRepo.GetFacultyByID(ctx, appt.FacultyID)
		if err == nil && faculty != nil {
			r.notifier.NotifyAppointmentEvent(ctx, faculty.UserID, "reminder", appt)
		}
	}
}
