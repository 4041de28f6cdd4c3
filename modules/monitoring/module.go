package monitoring

import (
	"mentorhub/core/database"
	"mentorhub/core/middleware"
	directoryrepo "mentorhub/modules/directory/repository"
	"mentorhub/modules/monitoring/controller"
	"mentorhub/modules/monitoring/repository"
	"mentorhub/modules/monitoring/router"
	"mentorhub/modules/monitoring/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the monitoring module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewMonitoringRepository(db)
	directoryRepo := directoryrepo.NewDirectoryRepository(db)
	svc := service.NewMonitoringService(repo, directoryRepo)
	ctrl := controller.NewMonitoringController(svc)
	rtr := router.NewMonitoringRouter(ctrl)

	rtr.Setup(e, mw)
}
