package seeder

import (
	"context"
	"log"
	"os"
	"time"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var defaultCategories = []string{
	"Identity Documents",
	"Certificates",
	"Licenses & Permits",
	"Job Applications",
	"Tax & Revenue",
	"Welfare Schemes",
}

// SeedDefaults creates the default categories and a bootstrap admin account
// on an empty database. Safe to call on every startup.
func SeedDefaults() error {
	ctx := context.Background()

	if err := seedCategories(ctx); err != nil {
		return err
	}
	return seedAdmin(ctx)
}

func seedCategories(ctx context.Context) error {
	count, err := DB.CategoryCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(defaultCategories))
	for _, name := range defaultCategories {
		docs = append(docs, models.Category{
			ID:       primitive.NewObjectID(),
			Name:     name,
			IsActive: true,
		})
	}
	if _, err := DB.CategoryCollection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("✅ Seeded %d default categories", len(docs))
	return nil
}

func seedAdmin(ctx context.Context) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL / ADMIN_PASSWORD not set. Skipping admin seed.")
		return nil
	}

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:                    primitive.NewObjectID(),
		Email:                 email,
		Password:              string(hashed),
		FullName:              "Portal Administrator",
		Role:                  "admin",
		WalletBalance:         0,
		PrivacyPolicyAccepted: true,
		CreatedAt:             time.Now(),
	}
	if _, err := DB.UserCollection.InsertOne(ctx, admin); err != nil {
		return err
	}
	log.Println("✅ Seeded bootstrap admin:", email)
	return nil
}
