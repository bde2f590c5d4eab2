package controllers

import (
	"fmt"
	"time"

	"Backend-GovSeva/src/services"
	"Backend-GovSeva/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

type SignupRequest struct {
	Email                 string `json:"email" validate:"required,email"`
	Password              string `json:"password" validate:"required,min=8"`
	FullName              string `json:"fullName" validate:"required"`
	PrivacyPolicyAccepted bool   `json:"privacyPolicyAccepted"`
}

// SignupUser godoc
// @Summary      Create a portal account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body SignupRequest true "Signup payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Router       /auth/signup [post]
func SignupUser(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid signup data: " + err.Error(),
			"code":  "INVALID_REQUEST",
		})
	}

	// Privacy policy must be accepted server-side, not just in the UI
	if !req.PrivacyPolicyAccepted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "You must agree to the Privacy Policy and Terms.",
			"code":  "POLICY_NOT_ACCEPTED",
		})
	}

	user, err := services.RegisterUser(c.Context(), req.Email, req.Password, req.FullName, c.IP())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created successfully!",
		"user": fiber.Map{
			"id":       user.ID.Hex(),
			"email":    user.Email,
			"fullName": user.FullName,
		},
	})
}

// LoginUser authenticates both citizens and admins.
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	if services.IsRateLimited(req.Email) {
		remainingTime := services.GetRemainingCooldownTime(req.Email)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remainingTime.Minutes()),
				int(remainingTime.Seconds())%60),
			"code":          "RATE_LIMITED",
			"remainingTime": int(remainingTime.Seconds()),
		})
	}

	user, err := services.AuthenticateUser(c.Context(), req.Email, req.Password)
	if err != nil {
		services.LogLoginAttempt(req.Email, c.IP(), false)

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	services.LogLoginAttempt(req.Email, c.IP(), true)

	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	return c.JSON(fiber.Map{
		"token":     token,
		"expiresIn": 86400,
		"user": fiber.Map{
			"id":            user.ID.Hex(),
			"fullName":      user.FullName,
			"email":         user.Email,
			"role":          user.Role,
			"walletBalance": user.WalletBalance,
			"lastLogin":     time.Now(),
		},
		"message": "Login successful",
	})
}

// RecordLogin stores a login session in the history table. Called by the
// frontend after a successful login.
func RecordLogin(c *fiber.Ctx) error {
	type RecordLoginRequest struct {
		UserAgent string `json:"userAgent"`
	}

	var req RecordLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	if err := services.RecordLogin(c.Context(), userID, c.IP(), req.UserAgent); err != nil {
		// history failures should never block a login
		return c.JSON(fiber.Map{"message": "Login recorded (with warnings): " + err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Login recorded successfully"})
}

// LogoutUser acknowledges a logout. Tokens are stateless, so the client
// discards its copy; the endpoint exists so the frontend has one place to
// call and future revocation can slot in behind it.
func LogoutUser(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// GetProfile returns the authenticated user's profile.
func GetProfile(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	user, err := services.GetUserByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}
