package directory

import (
	"mentorhub/core/database"
	"mentorhub/core/middleware"
	"mentorhub/modules/directory/controller"
	"mentorhub/modules/directory/repository"
	"mentorhub/modules/directory/router"
	"mentorhub/modules/directory/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the directory module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewDirectoryRepository(db)
	svc := service.NewDirectoryService(repo)
	ctrl := controller.NewDirectoryController(svc)

	router.NewDirectoryRouter(ctrl).Setup(e, mw)
}
