package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"Backend-GovSeva/src/database"
	"Backend-GovSeva/src/services/jobnotifications"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleExpireJobTask deactivates a posting once its expiry date passes.
func HandleExpireJobTask(ctx context.Context, t *asynq.Task) error {
	var payload JobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.JobID)
	if err != nil {
		return err
	}

	if err := jobnotifications.Deactivate(ctx, id); err != nil {
		if errors.Is(err, jobnotifications.ErrJobNotFound) {
			// posting deleted before it expired, nothing to do
			log.Println("⚠️ Job posting not found. Possibly deleted. Skipping task:", payload.JobID)
			return nil
		}
		log.Println("❌ Failed to expire job posting:", err)
		return err
	}

	log.Println("✅ Job posting expired:", payload.JobID)
	return nil
}

// jobAlertChannel is the redis pub/sub channel the frontend alert bell
// listens on.
const jobAlertChannel = "job_alerts"

// HandleNewJobAlertTask publishes a new-posting alert to subscribers.
func HandleNewJobAlertTask(ctx context.Context, t *asynq.Task) error {
	var payload JobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	if database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Skipping job alert:", payload.JobTitle)
		return nil
	}

	msg, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := database.RedisClient.Publish(ctx, jobAlertChannel, msg).Err(); err != nil {
		log.Println("❌ Failed to publish job alert:", err)
		return err
	}

	log.Println("✅ Job alert published:", payload.JobTitle)
	return nil
}
