package services

import (
	"context"
	"time"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxUserAgentLen = 500

// RecordLogin stores one login session, called by the frontend right after a
// successful login.
func RecordLogin(ctx context.Context, userID primitive.ObjectID, ip, userAgent string) error {
	if len(userAgent) > maxUserAgentLen {
		userAgent = userAgent[:maxUserAgentLen]
	}
	if userAgent == "" {
		userAgent = "Unknown"
	}

	entry := models.LoginHistory{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	_, err := DB.LoginHistoryCollection.InsertOne(ctx, entry)
	return err
}
