package notification

import (
	"mentorhub/core/database"
	"mentorhub/core/middleware"
	"mentorhub/modules/notification/controller"
	"mentorhub/modules/notification/queue"
	"mentorhub/modules/notification/repository"
	"mentorhub/modules/notification/router"
	"mentorhub/modules/notification/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and registers routes.
// Returns the producer for the appointment module to enqueue events through,
// and the queue handler for the asynq worker.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, client *asynq.Client) (*queue.Producer, *queue.Handler) {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Setup(e, mw)

	return queue.NewProducer(client), queue.NewHandler(svc)
}
