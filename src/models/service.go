package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field types supported by the dynamic application form.
const (
	FieldTypeText     = "text"
	FieldTypeNumber   = "number"
	FieldTypeEmail    = "email"
	FieldTypeDate     = "date"
	FieldTypeFile     = "file"
	FieldTypeSelect   = "select"
	FieldTypeTextarea = "textarea"
)

// FormField is one entry in a service's dynamic form schema. ID is stable
// once submissions reference it; changing it orphans old answers.
type FormField struct {
	ID       string   `bson:"id" json:"id"`
	Label    string   `bson:"label" json:"label"`
	Type     string   `bson:"type" json:"type"`
	Required bool     `bson:"required" json:"required"`
	Options  []string `bson:"options,omitempty" json:"options,omitempty"` // select only
}

// Service is a government service offering with a price and a configurable
// application form.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	CategoryID  primitive.ObjectID `bson:"categoryId" json:"categoryId"`
	Fields      []FormField        `bson:"fields" json:"fields"`
	LogoURL     string             `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
