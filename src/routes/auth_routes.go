package routes

import (
	"Backend-GovSeva/src/controllers"
	"Backend-GovSeva/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/signup", controllers.SignupUser)
	auth.Post("/login", controllers.LoginUser)

	auth.Post("/record-login", middleware.AuthJWT, controllers.RecordLogin)
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
	auth.Get("/profile", middleware.AuthJWT, controllers.GetProfile)
}
