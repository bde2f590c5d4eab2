package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginHistory records one login session (who, from where, with what).
type LoginHistory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	IPAddress string             `bson:"ipAddress" json:"ipAddress"`
	UserAgent string             `bson:"userAgent" json:"userAgent"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
