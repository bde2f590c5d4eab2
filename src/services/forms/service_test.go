package forms

import (
	"testing"

	"Backend-GovSeva/src/models"

	"github.com/stretchr/testify/assert"
)

func TestAddField(t *testing.T) {
	t.Run("TestDefaults", func(t *testing.T) {
		fields := AddField(nil)

		assert.Len(t, fields, 1)
		assert.NotEmpty(t, fields[0].ID)
		assert.Equal(t, "New Field", fields[0].Label)
		assert.Equal(t, models.FieldTypeText, fields[0].Type)
		assert.False(t, fields[0].Required)
	})

	t.Run("TestIDsStayUnique", func(t *testing.T) {
		var fields []models.FormField
		for i := 0; i < 10; i++ {
			fields = AddField(fields)
		}

		seen := map[string]bool{}
		for _, f := range fields {
			assert.False(t, seen[f.ID], "duplicate field id %s", f.ID)
			seen[f.ID] = true
		}
	})

	t.Run("TestUniqueAfterRemoveAndReAdd", func(t *testing.T) {
		fields := AddField(AddField(nil))
		removed := fields[0].ID
		fields = RemoveField(fields, removed)
		fields = AddField(fields)

		seen := map[string]bool{}
		for _, f := range fields {
			assert.False(t, seen[f.ID])
			seen[f.ID] = true
		}
		assert.Len(t, fields, 2)
	})
}

func TestRemoveField(t *testing.T) {
	t.Run("TestRemovesOnlyTarget", func(t *testing.T) {
		fields := AddField(AddField(AddField(nil)))
		target := fields[1].ID

		out := RemoveField(fields, target)

		assert.Len(t, out, 2)
		assert.Equal(t, fields[0].ID, out[0].ID)
		assert.Equal(t, fields[2].ID, out[1].ID)
	})

	t.Run("TestUnknownIDIsNoOp", func(t *testing.T) {
		fields := AddField(AddField(nil))
		out := RemoveField(fields, "no-such-id")
		assert.Equal(t, fields, out)
	})
}

func TestUpdateField(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("TestPartialUpdate", func(t *testing.T) {
		fields := AddField(nil)
		id := fields[0].ID

		out := UpdateField(fields, id, FieldUpdate{
			Label:    strPtr("Aadhaar Number"),
			Required: boolPtr(true),
		})

		assert.Equal(t, "Aadhaar Number", out[0].Label)
		assert.True(t, out[0].Required)
		assert.Equal(t, models.FieldTypeText, out[0].Type) // untouched
		assert.Equal(t, id, out[0].ID)                     // id never changes
	})

	t.Run("TestTypeAndOptions", func(t *testing.T) {
		fields := AddField(nil)
		opts := []string{"General", "OBC", "SC", "ST"}

		out := UpdateField(fields, fields[0].ID, FieldUpdate{
			Type:    strPtr(models.FieldTypeSelect),
			Options: &opts,
		})

		assert.Equal(t, models.FieldTypeSelect, out[0].Type)
		assert.Equal(t, opts, out[0].Options)
	})

	t.Run("TestUpdateAfterRemoveIsNoOp", func(t *testing.T) {
		fields := AddField(nil)
		id := fields[0].ID
		fields = RemoveField(fields, id)

		out := UpdateField(fields, id, FieldUpdate{Label: strPtr("ghost")})
		assert.Empty(t, out)
	})

	t.Run("TestDoesNotMutateInput", func(t *testing.T) {
		fields := AddField(nil)
		UpdateField(fields, fields[0].ID, FieldUpdate{Label: strPtr("changed")})
		assert.Equal(t, "New Field", fields[0].Label)
	})
}

func TestParseOptions(t *testing.T) {
	t.Run("TestTrimsSegments", func(t *testing.T) {
		assert.Equal(t, []string{"Yes", "No", "Maybe"}, ParseOptions("Yes, No , Maybe"))
	})

	t.Run("TestKeepsEmptySegments", func(t *testing.T) {
		assert.Equal(t, []string{"a", "", "b"}, ParseOptions("a,,b"))
		assert.Equal(t, []string{""}, ParseOptions(""))
	})
}

func TestValidateSubmission(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Label: "Full Name", Type: models.FieldTypeText, Required: true},
		{ID: "f2", Label: "Remarks", Type: models.FieldTypeTextarea, Required: false},
		{ID: "f3", Label: "ID Proof", Type: models.FieldTypeFile, Required: true},
	}

	t.Run("TestAllRequiredFilled", func(t *testing.T) {
		err := ValidateSubmission(fields, map[string]string{
			"f1": "Asha Kumari",
			"f3": "user1/123_idproof.pdf",
		})
		assert.NoError(t, err)
	})

	t.Run("TestOptionalMayBeEmpty", func(t *testing.T) {
		err := ValidateSubmission(fields, map[string]string{
			"f1": "Asha Kumari",
			"f2": "",
			"f3": "user1/123_idproof.pdf",
		})
		assert.NoError(t, err)
	})

	t.Run("TestRequiredMissing", func(t *testing.T) {
		err := ValidateSubmission(fields, map[string]string{"f1": "Asha Kumari"})

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "f3", verr.FieldID)
		assert.Equal(t, "ID Proof is required", verr.Error())
	})

	t.Run("TestWhitespaceCountsAsEmpty", func(t *testing.T) {
		err := ValidateSubmission(fields, map[string]string{
			"f1": "   ",
			"f3": "user1/123_idproof.pdf",
		})

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "f1", verr.FieldID)
	})

	t.Run("TestDataFillOrderIrrelevant", func(t *testing.T) {
		// maps carry no order; the first failing field in schema order wins
		a := map[string]string{"f3": "", "f1": ""}
		b := map[string]string{"f1": "", "f3": ""}

		var ea, eb *ValidationError
		assert.ErrorAs(t, ValidateSubmission(fields, a), &ea)
		assert.ErrorAs(t, ValidateSubmission(fields, b), &eb)
		assert.Equal(t, ea.FieldID, eb.FieldID)
	})

	t.Run("TestNoRequiredFields", func(t *testing.T) {
		optional := []models.FormField{{ID: "x", Label: "Anything", Required: false}}
		assert.NoError(t, ValidateSubmission(optional, map[string]string{}))
	})
}

func TestLabelFor(t *testing.T) {
	fields := []models.FormField{
		{ID: "f1", Label: "Full Name"},
	}

	t.Run("TestKnownKey", func(t *testing.T) {
		assert.Equal(t, "Full Name", LabelFor(fields, "f1"))
	})

	t.Run("TestUnknownKeyFallsBackToRawKey", func(t *testing.T) {
		assert.Equal(t, "old-field-id", LabelFor(fields, "old-field-id"))
	})
}

// Mirrors the admin flow: build a form, rename fields, remove one, then
// validate a citizen's filled submission against the final schema.
func TestBuilderToValidationFlow(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	var fields []models.FormField
	fields = AddField(fields)
	fields = AddField(fields)
	fields = AddField(fields)

	fields = UpdateField(fields, fields[0].ID, FieldUpdate{Label: strPtr("Applicant Name"), Required: boolPtr(true)})
	fields = UpdateField(fields, fields[1].ID, FieldUpdate{
		Label:   strPtr("District"),
		Type:    strPtr(models.FieldTypeSelect),
		Options: func() *[]string { o := ParseOptions("North, South, East, West"); return &o }(),
	})
	fields = RemoveField(fields, fields[2].ID)

	assert.Len(t, fields, 2)
	assert.Equal(t, []string{"North", "South", "East", "West"}, fields[1].Options)

	err := ValidateSubmission(fields, map[string]string{fields[1].ID: "North"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "Applicant Name is required", verr.Error())

	err = ValidateSubmission(fields, map[string]string{
		fields[0].ID: "Ravi Sharma",
		fields[1].ID: "North",
	})
	assert.NoError(t, err)
}
