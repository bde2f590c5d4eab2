package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups services for navigation.
type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	IsActive bool               `bson:"isActive" json:"isActive"`
}
