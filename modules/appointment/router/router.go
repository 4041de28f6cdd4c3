package router

import (
	"mentorhub/core/constants"
	"mentorhub/core/middleware"
	"mentorhub/modules/appointment/controller"

	"github.com/labstack/echo/v4"
)

// AppointmentRouter handles appointment routes
type AppointmentRouter struct {
	AppointmentController *controller.AppointmentController
}

// NewAppointmentRouter creates a new router
func NewAppointmentRouter(appointmentController *controller.AppointmentController) *AppointmentRouter {
	return &AppointmentRouter{
		AppointmentController: appointmentController,
	}
}

// Setup registers appointment routes
func (r *AppointmentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	appointments := privateRoutes.Group("/appointments", mw.AuthMiddleware())

	// Student side
	appointments.POST("", r.AppointmentController.Book, mw.RequireUserType(constants.UserTypeStudent))
	appointments.GET("/mine", r.AppointmentController.GetMine, mw.RequireUserType(constants.UserTypeStudent))
	appointments.PATCH("/:id/cancel", r.AppointmentController.Cancel, mw.RequireUserType(constants.UserTypeStudent))
	appointments.DELETE("/:id", r.AppointmentController.Remove, mw.RequireUserType(constants.UserTypeStudent))

	// Faculty side
	appointments.GET("/requests", r.AppointmentController.GetRequests, mw.RequireUserType(constants.UserTypeFaculty))
	appointments.PATCH("/:id/status", r.AppointmentController.UpdateStatus, mw.RequireUserType(constants.UserTypeFaculty))
	appointments.PATCH("/:id/complete", r.AppointmentController.Complete, mw.RequireUserType(constants.UserTypeFaculty))

	// Either owner side
	appointments.PATCH("/:id/reschedule", r.AppointmentController.Reschedule, mw.RequireUserType(constants.UserTypeStudent, constants.UserTypeFaculty))
	appointments.GET("/history", r.AppointmentController.History, mw.RequireUserType(constants.UserTypeStudent, constants.UserTypeFaculty))
}
