package router

import (
	"mentorhub/core/middleware"
	"mentorhub/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

// NotificationRouter handles notification routes
type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

func NewNotificationRouter(notificationController *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{
		NotificationController: notificationController,
	}
}

// Setup registers notification routes
func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	notifications := v1.Group("/private/notifications", mw.AuthMiddleware())

	notifications.GET("", r.NotificationController.GetMyNotifications)
	notifications.GET("/unread-count", r.NotificationController.CountUnread)
	notifications.PUT("/mark-read", r.NotificationController.MarkAsRead)
	notifications.PUT("/mark-all-read", r.NotificationController.MarkAllAsRead)
}
