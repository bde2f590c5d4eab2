package controllers

import (
	"os"
	"path/filepath"

	"Backend-GovSeva/src/services/uploads"

	"github.com/gofiber/fiber/v2"
)

const defaultSignedURLTTL = 60 // seconds

// GetSignedURL issues a short-lived download link for a private object. Users
// may only sign objects in their own folder; admins can sign anything.
func GetSignedURL(c *fiber.Ctx) error {
	bucket := c.Query("bucket")
	path := c.Query("path")
	if bucket == "" || path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bucket and path are required"})
	}
	if bucket != uploads.BucketUserDocuments && bucket != uploads.BucketFinalDocuments {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown bucket"})
	}

	role, _ := c.Locals("role").(string)
	userID, _ := c.Locals("userId").(string)
	if role != "admin" && bucket == uploads.BucketUserDocuments {
		if filepath.Dir(path) != userID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
		}
	}

	ttl := c.QueryInt("ttl", defaultSignedURLTTL)
	if ttl <= 0 || ttl > 3600 {
		ttl = defaultSignedURLTTL
	}

	url, err := uploads.SignedURL(bucket, path, ttl)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign URL: " + err.Error()})
	}
	return c.JSON(fiber.Map{"url": url, "expiresIn": ttl})
}

// DownloadFile serves a private object through its signed token. Public
// endpoint: the token itself is the authorization.
func DownloadFile(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "token is required"})
	}

	diskPath, err := uploads.ResolveToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}
	if _, err := os.Stat(diskPath); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
	}
	return c.SendFile(diskPath)
}

// ServeLogo serves a public catalog image from the service-logos bucket.
func ServeLogo(c *fiber.Ctx) error {
	name := c.Params("name")
	diskPath, err := uploads.DiskPath(uploads.BucketServiceLogos, name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if _, err := os.Stat(diskPath); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
	}
	return c.SendFile(diskPath)
}
