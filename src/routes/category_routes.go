package routes

import (
	"Backend-GovSeva/src/controllers"
	"Backend-GovSeva/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func categoryRoutes(app *fiber.App) {
	categories := app.Group("/categories")

	categories.Get("/", controllers.GetCategories)

	categories.Post("/", middleware.AuthJWT, middleware.AdminOnly, controllers.CreateCategory)
	categories.Put("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.UpdateCategory)
	categories.Delete("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.DeleteCategory)
}
