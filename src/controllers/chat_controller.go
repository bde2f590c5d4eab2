package controllers

import (
	"strings"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type chatIn struct {
	Message string `json:"message"`
}

// Chat answers the public help widget with a keyword lookup over active
// services and categories. The original assistant delegated to an external
// agent; the endpoint keeps the same shape with a catalog search behind it.
func Chat(c *fiber.Ctx) error {
	var in chatIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input: " + err.Error()})
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	matches := searchServices(c, message)
	if len(matches) == 0 {
		return c.JSON(fiber.Map{
			"reply":    "I couldn't find a matching service. Try browsing the categories, or ask about a specific service by name.",
			"services": []models.Service{},
		})
	}

	names := make([]string, 0, len(matches))
	for _, svc := range matches {
		names = append(names, svc.Name)
	}
	return c.JSON(fiber.Map{
		"reply":    "Here is what I found: " + strings.Join(names, ", ") + ". Open a service to see its fee and required details.",
		"services": matches,
	})
}

// searchServices matches each word of the message against service names and
// descriptions, longest words first so generic fillers rarely drive the hit.
func searchServices(c *fiber.Ctx, message string) []models.Service {
	words := strings.Fields(strings.ToLower(message))
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, ".,!?\"'")
		if len(w) >= 3 {
			keywords = append(keywords, w)
		}
	}
	if len(keywords) == 0 {
		return []models.Service{}
	}

	patterns := make(bson.A, 0, len(keywords)*2)
	for _, kw := range keywords {
		patterns = append(patterns,
			bson.M{"name": bson.M{"$regex": kw, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": kw, "$options": "i"}},
		)
	}

	filter := bson.M{"isActive": true, "$or": patterns}
	opts := options.Find().SetLimit(5)
	cursor, err := DB.ServiceCollection.Find(c.Context(), filter, opts)
	if err != nil {
		return []models.Service{}
	}
	defer cursor.Close(c.Context())

	results := []models.Service{}
	if err := cursor.All(c.Context(), &results); err != nil {
		return []models.Service{}
	}
	return results
}
