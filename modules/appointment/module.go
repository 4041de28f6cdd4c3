package appointment

import (
	"mentorhub/core/database"
	"mentorhub/core/middleware"
	"mentorhub/modules/appointment/controller"
	"mentorhub/modules/appointment/repository"
	"mentorhub/modules/appointment/router"
	"mentorhub/modules/appointment/service"
	directoryrepo "mentorhub/modules/directory/repository"
	monitoringrepo "mentorhub/modules/monitoring/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the appointment module and registers routes.
// Returns the repository so the notification reminder job can reuse it.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, notifier service.Notifier) repository.AppointmentRepositoryInterface {
	repo := repository.NewAppointmentRepository(db)
	monitoringRepo := monitoringrepo.NewMonitoringRepository(db)
	directoryRepo := directoryrepo.NewDirectoryRepository(db)

	svc := service.NewAppointmentService(db, repo, monitoringRepo, directoryRepo, notifier)
	ctrl := controller.NewAppointmentController(svc)
	rtr := router.NewAppointmentRouter(ctrl)

	rtr.Setup(e, mw)

	return repo
}
