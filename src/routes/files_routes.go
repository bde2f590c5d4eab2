package routes

import (
	"Backend-GovSeva/src/controllers"
	"Backend-GovSeva/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func fileRoutes(app *fiber.App) {
	files := app.Group("/files")

	files.Get("/signed-url", middleware.AuthJWT, controllers.GetSignedURL)

	// token-authorized and public assets need no session
	files.Get("/download", controllers.DownloadFile)
	files.Get("/service-logos/:name", controllers.ServeLogo)
}
