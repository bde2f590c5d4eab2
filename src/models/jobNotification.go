package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobNotification is a job posting shown on the notice board.
type JobNotification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	ExpiresAt   *time.Time         `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
