package auth

import (
	"mentorhub/core/cache"
	"mentorhub/core/database"
	"mentorhub/core/middleware"
	"mentorhub/modules/auth/controller"
	"mentorhub/modules/auth/repository"
	"mentorhub/modules/auth/router"
	"mentorhub/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module into the server
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	authService := service.NewAuthService(repo, c)
	authController := controller.NewAuthController(authService)

	router.NewAuthRouter(authController).Setup(e, mw)
}
