package routes

import (
	"Backend-GovSeva/src/controllers"
	"Backend-GovSeva/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func notificationRoutes(app *fiber.App) {
	notifications := app.Group("/notifications")
	notifications.Use(middleware.AuthJWT)

	notifications.Get("/preference", controllers.GetNotificationPreference)
	notifications.Post("/preference", controllers.SetNotificationPreference)
	notifications.Get("/jobs", controllers.GetJobNotifications)
}
