package validation

import (
	"strings"

	"worklog/internal/domain"
)

const (
	// DefaultProjectCodeMaxLength bounds the free-text project code.
	DefaultProjectCodeMaxLength = 64
	// DefaultDescriptionMaxLength bounds the free-text description.
	DefaultDescriptionMaxLength = 500
)

// EntryValidator validates log entry input before it reaches the store.
// Hours must be a positive exact multiple of 0.25; violating values are
// rejected, never rounded.
type EntryValidator struct {
	projectCodeMaxLength int
	descriptionMaxLength int
}

// NewEntryValidator creates a validator with default limits.
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		projectCodeMaxLength: DefaultProjectCodeMaxLength,
		descriptionMaxLength: DefaultDescriptionMaxLength,
	}
}

// NewEntryValidatorWithLimits creates a validator with configured limits.
// Non-positive limits fall back to the defaults.
func NewEntryValidatorWithLimits(projectCodeMax, descriptionMax int) *EntryValidator {
	v := NewEntryValidator()
	if projectCodeMax > 0 {
		v.projectCodeMaxLength = projectCodeMax
	}
	if descriptionMax > 0 {
		v.descriptionMaxLength = descriptionMax
	}
	return v
}

// ValidateInput validates the fields for creating a new entry.
func (v *EntryValidator) ValidateInput(input domain.EntryInput) error {
	ve := NewValidationError()

	if input.Date.IsZero() {
		ve.AddRequiredError("date")
	}
	v.checkProjectCode(ve, input.ProjectCode)
	v.checkDescription(ve, input.Description)
	v.checkHours(ve, input.Hours)

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// ValidatePatch validates the fields supplied for updating an entry.
// Nil fields are not checked; a supplied hours value is re-validated.
func (v *EntryValidator) ValidatePatch(patch domain.EntryPatch) error {
	ve := NewValidationError()

	if patch.Date != nil && patch.Date.IsZero() {
		ve.AddRequiredError("date")
	}
	if patch.ProjectCode != nil {
		v.checkProjectCode(ve, *patch.ProjectCode)
	}
	if patch.Description != nil {
		v.checkDescription(ve, *patch.Description)
	}
	if patch.Hours != nil {
		v.checkHours(ve, *patch.Hours)
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// ValidateHours validates a standalone hours value.
func (v *EntryValidator) ValidateHours(hours float64) error {
	ve := NewValidationError()
	v.checkHours(ve, hours)
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func (v *EntryValidator) checkProjectCode(ve *ValidationError, code string) {
	if strings.TrimSpace(code) == "" {
		ve.AddRequiredError("projectCode")
		return
	}
	if len(code) > v.projectCodeMaxLength {
		ve.AddInvalidLengthError("projectCode", code, v.projectCodeMaxLength)
	}
}

func (v *EntryValidator) checkDescription(ve *ValidationError, description string) {
	if len(description) > v.descriptionMaxLength {
		ve.AddInvalidLengthError("description", description, v.descriptionMaxLength)
	}
}

func (v *EntryValidator) checkHours(ve *ValidationError, hours float64) {
	if hours == 0 {
		ve.AddRequiredError("hours")
		return
	}
	if hours < 0 {
		ve.AddInvalidValueError("hours", hours, "must be positive")
		return
	}
	if !domain.IsQuarterHours(hours) {
		ve.AddInvalidValueError("hours", hours, "must be a multiple of 0.25")
	}
}
