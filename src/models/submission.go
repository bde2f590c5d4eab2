package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission statuses. Pending is the initial state; admins approve, reject
// or revert back to pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Submission is one applicant's filled-in attempt at a service (shown as
// "application" in the admin UI). Data maps FormField.ID to the entered
// value; file fields hold a storage path, not content.
type Submission struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	ServiceID        primitive.ObjectID `bson:"serviceId" json:"serviceId"`
	Data             map[string]string  `bson:"data" json:"data"`
	Status           string             `bson:"status" json:"status"`
	FinalDocumentURL string             `bson:"finalDocumentUrl,omitempty" json:"finalDocumentUrl,omitempty"`
	SubmittedIP      string             `bson:"submittedIp,omitempty" json:"-"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
