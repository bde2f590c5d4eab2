package routes

import (
	"Backend-GovSeva/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func chatRoutes(app *fiber.App) {
	chat := app.Group("/chat")

	chat.Post("/", controllers.Chat)
}
