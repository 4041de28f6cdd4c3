package router

import (
	"mentorhub/core/constants"
	"mentorhub/core/middleware"
	"mentorhub/modules/directory/controller"

	"github.com/labstack/echo/v4"
)

// DirectoryRouter handles student and faculty record routes
type DirectoryRouter struct {
	DirectoryController *controller.DirectoryController
}

func NewDirectoryRouter(directoryController *controller.DirectoryController) *DirectoryRouter {
	return &DirectoryRouter{
		DirectoryController: directoryController,
	}
}

// Setup registers directory routes
func (r *DirectoryRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	directory := v1.Group("/private/directory", mw.AuthMiddleware())

	// Admin side
	directory.POST("/students", r.DirectoryController.CreateStudent, mw.RequireUserType(constants.UserTypeAdmin))
	directory.POST("/faculty", r.DirectoryController.CreateFaculty, mw.RequireUserType(constants.UserTypeAdmin))
	directory.DELETE("/students/:id", r.DirectoryController.DeleteStudent, mw.RequireUserType(constants.UserTypeAdmin))

	// Faculty side
	directory.GET("/mentees", r.DirectoryController.ListMentees, mw.RequireUserType(constants.UserTypeFaculty))
	directory.GET("/booking-link", r.DirectoryController.BookingLink, mw.RequireUserType(constants.UserTypeFaculty))
}
