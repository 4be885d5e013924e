// Package validation implements the scheduling form's field rules. All
// functions are pure: they take the value and the moment of validation
// and return a user-facing message, or "" when the field is acceptable.
package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mzaikin/wakecall/internal/models"
)

// Field names match the form's JSON keys.
const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldReason      = "reason"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var validate = validator.New()

// ValidateField checks a single form field. The future-date rule is
// relative to now, which is the moment of the call, not page load: the
// same draft can pass on blur and fail at submit after midnight.
func ValidateField(field, value string, now time.Time) string {
	switch field {
	case FieldName:
		trimmed := strings.TrimSpace(value)
		if validate.Var(trimmed, "required") != nil {
			return "Name is required"
		}
		if validate.Var(trimmed, "min=2") != nil {
			return "Name must be at least 2 characters"
		}

	case FieldPhoneNumber:
		// Format is owned by the phone-input widget upstream; only
		// presence is checked here.
		if validate.Var(strings.TrimSpace(value), "required") != nil {
			return "Phone number is required"
		}

	case FieldDate:
		if value == "" {
			return "Date is required"
		}
		if validate.Var(value, "datetime=2006-01-02") != nil {
			return "Date must be in YYYY-MM-DD format"
		}
		day, err := time.ParseInLocation(DateLayout, value, now.Location())
		if err != nil {
			return "Date must be in YYYY-MM-DD format"
		}
		if !day.After(now) {
			return "Please select a future date"
		}

	case FieldTime:
		if strings.TrimSpace(value) == "" {
			return "Time is required"
		}
		if validate.Var(value, "datetime=15:04") != nil {
			return "Time must be in HH:MM format"
		}

	case FieldReason:
		trimmed := strings.TrimSpace(value)
		if validate.Var(trimmed, "required") != nil {
			return "Reason is required"
		}
		if validate.Var(trimmed, "min=5") != nil {
			return "Reason must be at least 5 characters"
		}
	}

	return ""
}

// ValidateRequest runs every field rule over the full request and returns
// the per-field messages. An empty map means the request is submittable.
func ValidateRequest(req *models.ScheduleRequest, now time.Time) map[string]string {
	values := map[string]string{
		FieldName:        req.Name,
		FieldPhoneNumber: req.PhoneNumber,
		FieldDate:        req.Date,
		FieldTime:        req.Time,
		FieldReason:      req.Reason,
	}

	errs := make(map[string]string)
	for field, value := range values {
		if msg := ValidateField(field, value, now); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}
