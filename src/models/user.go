package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a portal account. Citizens and admins share the same collection,
// separated by Role.
type User struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email                   string             `bson:"email" json:"email"`
	Password                string             `bson:"password,omitempty" json:"-"` // accepted from frontend, never returned
	FullName                string             `bson:"fullName" json:"fullName"`
	Role                    string             `bson:"role" json:"role"` // "user" | "admin"
	WalletBalance           float64            `bson:"walletBalance" json:"walletBalance"`
	JobNotificationsEnabled bool               `bson:"jobNotificationsEnabled" json:"jobNotificationsEnabled"`
	PrivacyPolicyAccepted   bool               `bson:"privacyPolicyAccepted" json:"privacyPolicyAccepted"`
	AcceptedAt              *time.Time         `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
	IPAddress               string             `bson:"ipAddress,omitempty" json:"-"`
	CreatedAt               time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}
