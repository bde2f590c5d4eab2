package services

import (
	"context"

	DB "Backend-GovSeva/src/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetNotificationPreference reads the job-alert opt-in flag. Missing users
// read as disabled rather than erroring, matching the dashboard behaviour.
func GetNotificationPreference(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	var user struct {
		JobNotificationsEnabled bool `bson:"jobNotificationsEnabled"`
	}
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return false, nil
	}
	return user.JobNotificationsEnabled, nil
}

// SetNotificationPreference toggles the job-alert opt-in flag.
func SetNotificationPreference(ctx context.Context, userID primitive.ObjectID, enabled bool) error {
	_, err := DB.UserCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"jobNotificationsEnabled": enabled}},
	)
	return err
}
