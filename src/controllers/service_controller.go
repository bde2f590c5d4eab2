package controllers

import (
	"errors"

	"Backend-GovSeva/src/models"
	"Backend-GovSeva/src/services/catalog"
	"Backend-GovSeva/src/services/forms"
	"Backend-GovSeva/src/services/submissions"
	"Backend-GovSeva/src/services/uploads"
	"Backend-GovSeva/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var submissionSvc = submissions.NewMongoService()

// GetServices - public listing of active services (?category= filters).
func GetServices(c *fiber.Ctx) error {
	var categoryID *primitive.ObjectID
	if q := c.Query("category"); q != "" {
		oid, err := primitive.ObjectIDFromHex(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
		}
		categoryID = &oid
	}

	services, err := catalog.GetActiveServices(c.Context(), categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(services)
}

// GetAllServices - admin listing including inactive services.
func GetAllServices(c *fiber.Ctx) error {
	services, err := catalog.GetAllServices(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(services)
}

// GetService - public service detail with its form schema.
func GetService(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	svc, err := catalog.GetServiceByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	return c.JSON(svc)
}

// CreateService godoc
// @Summary      Create a service
// @Description  Admin only: create a service with its dynamic form fields
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body body models.Service true "Service"
// @Success      201  {object}  models.Service
// @Failure      400  {object}  models.ErrorResponse
// @Router       /services [post]
func CreateService(c *fiber.Ctx) error {
	var svc models.Service
	if err := c.BodyParser(&svc); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(svc); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := catalog.CreateService(c.Context(), &svc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateService - admin edit, including the form builder's field list.
func UpdateService(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	var svc models.Service
	if err := c.BodyParser(&svc); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := catalog.UpdateService(c.Context(), id, &svc)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(updated)
}

// DeleteService - admin delete; refused while submissions reference it.
func DeleteService(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	if err := catalog.DeleteService(c.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrServiceInUse) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Service has existing applications and cannot be deleted"})
		}
		if errors.Is(err, catalog.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
}

// UploadServiceLogo - admin uploads a catalog image to the service-logos
// bucket and gets back its public path.
func UploadServiceLogo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	objectPath := uploads.LogoPath(fileHeader.Filename)
	diskPath, err := uploads.DiskPath(uploads.BucketServiceLogos, objectPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed: " + err.Error()})
	}
	if err := c.SaveFile(fileHeader, diskPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{"url": "/files/" + uploads.BucketServiceLogos + "/" + objectPath})
}

type applyIn struct {
	ServiceID string            `json:"serviceId"`
	Data      map[string]string `json:"data"`
}

// ApplyForService godoc
// @Summary      Submit a service application
// @Description  Validates the filled form, debits the wallet by the service price and creates a pending application, atomically.
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body body applyIn true "Application payload"
// @Success      201  {object}  models.Submission
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /services/apply [post]
func ApplyForService(c *fiber.Ctx) error {
	var in applyIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input: " + err.Error()})
	}

	serviceOID, err := primitive.ObjectIDFromHex(in.ServiceID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid serviceId"})
	}
	userOID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	created, err := submissionSvc.Submit(c.Context(), userOID, serviceOID, in.Data, c.IP())
	if err != nil {
		var insufficient *submissions.ErrInsufficientFunds
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":     "Insufficient wallet balance",
				"code":      "INSUFFICIENT_FUNDS",
				"shortfall": insufficient.Shortfall,
				"balance":   insufficient.Balance,
				"price":     insufficient.Price,
			})
		}
		var invalid *forms.ValidationError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": invalid.Error(),
				"code":  "VALIDATION_FAILED",
				"field": invalid.FieldID,
			})
		}
		if errors.Is(err, submissions.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetMySubmissions - the caller's applications for one service, newest
// first. The frontend refetches this after every submit.
func GetMySubmissions(c *fiber.Ctx) error {
	serviceOID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}
	userOID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not authenticated"})
	}

	subs, err := submissionSvc.ListForUser(c.Context(), userOID, serviceOID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(subs)
}

// UploadUserDocument handles the renderer's file-field side effect: size
// check against the configured ceiling, then store under a user- and
// timestamp-scoped path. The returned path becomes the field's value.
func UploadUserDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	if err := uploads.ValidateSize(fileHeader.Size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "FILE_TOO_LARGE",
		})
	}

	userID, _ := c.Locals("userId").(string)
	objectPath := uploads.UserDocumentPath(userID, fileHeader.Filename)
	diskPath, err := uploads.DiskPath(uploads.BucketUserDocuments, objectPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed. Please try again."})
	}
	if err := c.SaveFile(fileHeader, diskPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Upload failed. Please try again."})
	}

	return c.JSON(fiber.Map{"path": objectPath})
}
