package controllers

import (
	"errors"
	"log"
	"time"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/jobs"
	"Backend-GovSeva/src/models"
	"Backend-GovSeva/src/services/jobnotifications"
	"Backend-GovSeva/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetActiveJobs - active job postings for users.
func GetActiveJobs(c *fiber.Ctx) error {
	list, err := jobnotifications.GetActiveJobs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch jobs: " + err.Error()})
	}
	return c.JSON(list)
}

// GetAllJobs - every posting (active and inactive) for admins.
func GetAllJobs(c *fiber.Ctx) error {
	list, err := jobnotifications.GetAllJobs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch jobs: " + err.Error()})
	}
	return c.JSON(list)
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Admin only. Schedules auto-expiry when expiresAt is set and fans an alert out to subscribed users.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body body models.JobNotification true "Job posting"
// @Success      201  {object}  models.JobNotification
// @Failure      400  {object}  models.ErrorResponse
// @Router       /jobs [post]
func CreateJob(c *fiber.Ctx) error {
	var job models.JobNotification
	if err := c.BodyParser(&job); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(job); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := jobnotifications.CreateJob(c.Context(), &job)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create job: " + err.Error()})
	}

	// background work is best-effort; the posting exists either way
	if DB.AsynqClient != nil {
		if task, err := jobs.NewJobAlertTask(created.ID.Hex(), created.Title); err == nil {
			if _, err := DB.AsynqClient.Enqueue(task); err != nil {
				log.Println("⚠️ Failed to enqueue job alert:", err)
			}
		}
		if created.ExpiresAt != nil && created.ExpiresAt.After(time.Now()) {
			if task, err := jobs.NewExpireJobTask(created.ID.Hex(), created.Title); err == nil {
				_, err := DB.AsynqClient.Enqueue(task,
					asynq.ProcessAt(*created.ExpiresAt),
					asynq.TaskID("expire-job-"+created.ID.Hex()))
				if err != nil {
					log.Println("⚠️ Failed to schedule job expiry:", err)
				}
			}
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// DeleteJob - admin hard delete.
func DeleteJob(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	if err := jobnotifications.DeleteJob(c.Context(), id); err != nil {
		if errors.Is(err, jobnotifications.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job notification not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete job: " + err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Job notification deleted successfully"})
}
