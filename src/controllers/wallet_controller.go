package controllers

import (
	"errors"

	"Backend-GovSeva/src/services/wallet"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetWalletPlans - public top-up plans with their hosted checkout links.
func GetWalletPlans(c *fiber.Ctx) error {
	return c.JSON(wallet.Plans)
}

// GetWalletBalance returns the caller's current balance.
func GetWalletBalance(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	balance, err := wallet.Balance(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch balance: " + err.Error()})
	}
	return c.JSON(fiber.Map{"balance": balance})
}

type topUpIn struct {
	Plan             string `json:"plan"`
	PaymentReference string `json:"paymentReference"`
}

// TopUpWallet godoc
// @Summary      Credit the wallet after a completed checkout
// @Description  Called by the payment callback page. Idempotent on paymentReference.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        body body topUpIn true "Top-up payload"
// @Success      200  {object}  wallet.TopUpResult
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Failure      429  {object}  map[string]interface{}
// @Router       /wallet/topup [post]
func TopUpWallet(c *fiber.Ctx) error {
	var in topUpIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input: " + err.Error()})
	}

	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	result, err := wallet.TopUp(c.Context(), userID, in.Plan, in.PaymentReference)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidPlan) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid plan selected", "code": "INVALID_PLAN"})
		}
		if errors.Is(err, wallet.ErrAlreadyProcessed) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This payment was already processed", "code": "ALREADY_PROCESSED"})
		}
		if errors.Is(err, wallet.ErrTooManyTopUps) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many top-up attempts. Please wait a few minutes.", "code": "RATE_LIMITED"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Top-up failed: " + err.Error()})
	}

	return c.JSON(result)
}

// GetWalletTransactions - the caller's wallet history, newest first.
func GetWalletTransactions(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	txns, err := wallet.Transactions(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch transactions: " + err.Error()})
	}
	return c.JSON(txns)
}
