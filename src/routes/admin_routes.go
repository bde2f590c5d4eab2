package routes

import (
	"Backend-GovSeva/src/controllers"
	"Backend-GovSeva/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func adminRoutes(app *fiber.App) {
	admin := app.Group("/admin")
	admin.Use(middleware.AuthJWT, middleware.AdminOnly)

	admin.Get("/stats", controllers.GetAdminStats)

	admin.Get("/applications", controllers.GetAllApplications)
	admin.Get("/applications/:id", controllers.GetApplicationDetail)
	admin.Patch("/applications/:id", controllers.UpdateApplicationStatus)
	admin.Post("/applications/:id/document", controllers.UploadApplicationDocument)
}
