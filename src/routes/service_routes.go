package routes

import (
	"Backend-GovSeva/src/controllers"
	"Backend-GovSeva/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func serviceRoutes(app *fiber.App) {
	services := app.Group("/services")

	// static segments before /:id so the router never shadows them
	services.Get("/", controllers.GetServices)
	services.Get("/all", middleware.AuthJWT, middleware.AdminOnly, controllers.GetAllServices)
	services.Post("/apply", middleware.AuthJWT, controllers.ApplyForService)
	services.Post("/upload", middleware.AuthJWT, controllers.UploadUserDocument)

	services.Get("/:id", controllers.GetService)
	services.Get("/:id/submissions", middleware.AuthJWT, controllers.GetMySubmissions)

	services.Post("/", middleware.AuthJWT, middleware.AdminOnly, controllers.CreateService)
	services.Put("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.UpdateService)
	services.Delete("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.DeleteService)
	services.Post("/:id/logo", middleware.AuthJWT, middleware.AdminOnly, controllers.UploadServiceLogo)
}
