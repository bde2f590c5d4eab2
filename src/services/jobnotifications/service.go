package jobnotifications

import (
	"context"
	"errors"
	"time"

	DB "Backend-GovSeva/src/database"
	"Backend-GovSeva/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrJobNotFound = errors.New("job notification not found")

// CreateJob stores a new job posting.
func CreateJob(ctx context.Context, job *models.JobNotification) (*models.JobNotification, error) {
	job.ID = primitive.NewObjectID()
	job.CreatedAt = time.Now()

	if _, err := DB.JobNotificationCollection.InsertOne(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a posting (hard delete, as on the admin screen).
func DeleteJob(ctx context.Context, id primitive.ObjectID) error {
	res, err := DB.JobNotificationCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Deactivate marks a posting inactive (used by the expiry worker).
func Deactivate(ctx context.Context, id primitive.ObjectID) error {
	res, err := DB.JobNotificationCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": false}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}

// GetActiveJobs lists active postings for users, newest first.
func GetActiveJobs(ctx context.Context) ([]models.JobNotification, error) {
	return findJobs(ctx, bson.M{"isActive": true})
}

// GetAllJobs lists every posting for the admin screen, newest first.
func GetAllJobs(ctx context.Context) ([]models.JobNotification, error) {
	return findJobs(ctx, bson.M{})
}

func findJobs(ctx context.Context, filter bson.M) ([]models.JobNotification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.JobNotificationCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	jobs := []models.JobNotification{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
