package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	categoryRoutes(app)
	serviceRoutes(app)
	adminRoutes(app)
	jobRoutes(app)
	walletRoutes(app)
	notificationRoutes(app)
	fileRoutes(app)
	chatRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
