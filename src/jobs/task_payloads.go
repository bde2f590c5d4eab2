package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeExpireJobNotification = "jobs:expire"
	TypeNewJobAlert           = "jobs:alert"
)

// JobPayload identifies one job posting for a background task.
type JobPayload struct {
	JobID    string `json:"jobId"`
	JobTitle string `json:"jobTitle"`
}

// NewExpireJobTask schedules deactivation of a posting at its expiry date.
func NewExpireJobTask(jobID, jobTitle string) (*asynq.Task, error) {
	payload, err := json.Marshal(JobPayload{JobID: jobID, JobTitle: jobTitle})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExpireJobNotification, payload), nil
}

// NewJobAlertTask fans a freshly created posting out to subscribed users.
func NewJobAlertTask(jobID, jobTitle string) (*asynq.Task, error) {
	payload, err := json.Marshal(JobPayload{JobID: jobID, JobTitle: jobTitle})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNewJobAlert, payload), nil
}
