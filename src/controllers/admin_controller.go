package controllers

import (
	"errors"

	"Backend-GovSeva/src/models"
	"Backend-GovSeva/src/services"
	"Backend-GovSeva/src/services/catalog"
	"Backend-GovSeva/src/services/submissions"
	"Backend-GovSeva/src/services/uploads"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAdminStats godoc
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/stats [get]
func GetAdminStats(c *fiber.Ctx) error {
	ctx := c.Context()

	totalUsers, err := services.CountUsers(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Stats calculation failed: " + err.Error()})
	}
	totalServices, err := catalog.CountServices(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Stats calculation failed: " + err.Error()})
	}
	total, pending, approved, rejected, err := submissions.CountByStatus(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Stats calculation failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"total_users":           totalUsers,
		"total_services":        totalServices,
		"total_applications":    total,
		"pending_applications":  pending,
		"approved_applications": approved,
		"rejected_applications": rejected,
	})
}

// GetAllApplications - admin review list with applicant and service details,
// optionally filtered by ?status=.
func GetAllApplications(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && status != models.StatusPending && status != models.StatusApproved && status != models.StatusRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	apps, err := submissions.ListApplications(c.Context(), status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(apps)
}

// GetApplicationDetail - one joined application. Data keys missing from the
// service's current fields are still returned; the UI shows the raw key.
func GetApplicationDetail(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	app, err := submissions.GetApplication(c.Context(), id)
	if err != nil {
		if errors.Is(err, submissions.ErrSubmissionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(app)
}

// UpdateApplicationStatus godoc
// @Summary      Approve, reject or revert an application
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Application ID"
// @Param        body  body  object{status=string}  true  "New status"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /admin/applications/{id} [patch]
func UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input: " + err.Error()})
	}
	if in.Status != models.StatusPending && in.Status != models.StatusApproved && in.Status != models.StatusRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	updated, err := submissionSvc.UpdateStatus(c.Context(), id, in.Status)
	if err != nil {
		var invalid *submissions.ErrInvalidTransition
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": invalid.Error()})
		}
		if errors.Is(err, submissions.ErrSubmissionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(updated)
}

// UploadApplicationDocument - attach the final document to an application
// (final-documents bucket, private). Independent of approval order: the
// admin may approve first and upload later, or the other way round.
func UploadApplicationDocument(c *fiber.Ctx) error {
	id := c.Params("id")
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	objectPath := uploads.FinalDocumentPath(id, fileHeader.Filename)
	diskPath, err := uploads.DiskPath(uploads.BucketFinalDocuments, objectPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed: " + err.Error()})
	}
	if err := c.SaveFile(fileHeader, diskPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed: " + err.Error()})
	}

	if err := submissionSvc.AttachFinalDocument(c.Context(), oid, objectPath); err != nil {
		if errors.Is(err, submissions.ErrSubmissionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "file_path": objectPath})
}
