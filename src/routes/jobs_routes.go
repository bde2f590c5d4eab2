package routes

import (
	"Backend-GovSeva/src/controllers"
	"Backend-GovSeva/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func jobRoutes(app *fiber.App) {
	jobs := app.Group("/jobs")
	jobs.Use(middleware.AuthJWT)

	jobs.Get("/", controllers.GetActiveJobs)

	jobs.Get("/all", middleware.AdminOnly, controllers.GetAllJobs)
	jobs.Post("/", middleware.AdminOnly, controllers.CreateJob)
	jobs.Delete("/:id", middleware.AdminOnly, controllers.DeleteJob)
}
