package forms

import (
	"fmt"
	"strings"

	"Backend-GovSeva/src/models"

	"github.com/google/uuid"
)

// Builder operations for the admin form editor. All of these are total
// functions over the in-memory field list; persistence belongs to the
// service editor that consumes the result.

// AddField appends a fresh field with a random id, default label and type.
func AddField(fields []models.FormField) []models.FormField {
	newField := models.FormField{
		ID:       uuid.NewString(),
		Label:    "New Field",
		Type:     models.FieldTypeText,
		Required: false,
	}
	return append(fields, newField)
}

// RemoveField drops the field with the given id. No-op if absent; the
// remaining fields keep their ids untouched.
func RemoveField(fields []models.FormField, id string) []models.FormField {
	out := make([]models.FormField, 0, len(fields))
	for _, f := range fields {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}

// FieldUpdate carries a partial update for one field. Nil members are left
// as they are.
type FieldUpdate struct {
	Label    *string
	Type     *string
	Required *bool
	Options  *[]string
}

// UpdateField merges the update into the field matching id. No-op if absent.
func UpdateField(fields []models.FormField, id string, update FieldUpdate) []models.FormField {
	out := make([]models.FormField, len(fields))
	copy(out, fields)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if update.Label != nil {
			out[i].Label = *update.Label
		}
		if update.Type != nil {
			out[i].Type = *update.Type
		}
		if update.Required != nil {
			out[i].Required = *update.Required
		}
		if update.Options != nil {
			out[i].Options = *update.Options
		}
	}
	return out
}

// ParseOptions splits a comma separated options string and trims each
// segment. Empty segments are kept, matching the admin editor behaviour.
func ParseOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// ValidationError names the first required field left empty.
type ValidationError struct {
	FieldID string
	Label   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Label)
}

// ValidateSubmission checks that every required field has a non-empty value
// in data. For file fields the value is the uploaded storage path, which
// must be set. The result does not depend on field order: the first required
// field in schema order is reported, whatever order data was filled in.
func ValidateSubmission(fields []models.FormField, data map[string]string) error {
	for _, f := range fields {
		if !f.Required {
			continue
		}
		if strings.TrimSpace(data[f.ID]) == "" {
			return &ValidationError{FieldID: f.ID, Label: f.Label}
		}
	}
	return nil
}

// LabelFor resolves a submission data key to its field label. Keys no longer
// present in the schema fall back to the raw key so old submissions still
// display after the form changed.
func LabelFor(fields []models.FormField, key string) string {
	for _, f := range fields {
		if f.ID == key {
			return f.Label
		}
	}
	return key
}
