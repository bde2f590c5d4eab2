package routes

import (
	"Backend-GovSeva/src/controllers"
	"Backend-GovSeva/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func walletRoutes(app *fiber.App) {
	wallet := app.Group("/wallet")
	wallet.Use(middleware.AuthJWT)

	wallet.Get("/plans", controllers.GetWalletPlans)
	wallet.Get("/balance", controllers.GetWalletBalance)
	wallet.Post("/topup", controllers.TopUpWallet)
	wallet.Get("/transactions", controllers.GetWalletTransactions)
}
