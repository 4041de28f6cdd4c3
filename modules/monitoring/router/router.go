package router

import (
	"mentorhub/core/constants"
	"mentorhub/core/middleware"
	"mentorhub/modules/monitoring/controller"

	"github.com/labstack/echo/v4"
)

// MonitoringRouter handles monitoring-session routes
type MonitoringRouter struct {
	MonitoringController *controller.MonitoringController
}

func NewMonitoringRouter(monitoringController *controller.MonitoringController) *MonitoringRouter {
	return &MonitoringRouter{
		MonitoringController: monitoringController,
	}
}

// Setup registers monitoring routes
func (r *MonitoringRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	sessions := privateRoutes.Group("/monitoring-sessions", mw.AuthMiddleware())
	sessions.GET("/mine", r.MonitoringController.ListMine, mw.RequireUserType(constants.UserTypeStudent))
	sessions.GET("/students/:studentId", r.MonitoringController.ListForMentee, mw.RequireUserType(constants.UserTypeFaculty))
}
