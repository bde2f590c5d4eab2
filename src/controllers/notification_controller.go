package controllers

import (
	"errors"

	"Backend-GovSeva/src/models"
	"Backend-GovSeva/src/services"
	"Backend-GovSeva/src/services/catalog"
	"Backend-GovSeva/src/services/categories"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const jobFeedDays = 7
const jobFeedLimit = 10

// GetNotificationPreference returns the caller's job-alert opt-in flag.
func GetNotificationPreference(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	enabled, err := services.GetNotificationPreference(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"enabled": enabled})
}

// SetNotificationPreference toggles the caller's job-alert opt-in flag.
func SetNotificationPreference(c *fiber.Ctx) error {
	var in struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input: " + err.Error()})
	}

	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	if err := services.SetNotificationPreference(c.Context(), userID, in.Enabled); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"enabled": in.Enabled})
}

// GetJobNotifications - recent job postings for opted-in users. Users who
// disabled alerts, and portals with no job category yet, both get an empty
// list rather than an error.
func GetJobNotifications(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	enabled, err := services.GetNotificationPreference(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !enabled {
		return c.JSON([]models.Service{})
	}

	jobCat, err := categories.FindJobCategory(c.Context())
	if err != nil {
		if errors.Is(err, categories.ErrCategoryNotFound) {
			return c.JSON([]models.Service{})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	jobServices, err := catalog.GetRecentJobServices(c.Context(), jobCat.ID, jobFeedDays, jobFeedLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(jobServices)
}
