package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mzaikin/wakecall/internal/models"
	"github.com/mzaikin/wakecall/internal/validation"
)

func TestValidateField_Success(t *testing.T) {
	now := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		field string
		value string
	}{
		{name: "valid name", field: validation.FieldName, value: "Al"},
		{name: "name with surrounding spaces", field: validation.FieldName, value: "  Bo  "},
		{name: "valid phone", field: validation.FieldPhoneNumber, value: "+15551234567"},
		{name: "future date", field: validation.FieldDate, value: "2025-06-01"},
		{name: "valid time", field: validation.FieldTime, value: "07:30"},
		{name: "valid reason", field: validation.FieldReason, value: "Flight to NYC"},
		{name: "unknown field is accepted", field: "nonsense", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, validation.ValidateField(tt.field, tt.value, now))
		})
	}
}

func TestValidateField_Failure(t *testing.T) {
	now := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		field    string
		value    string
		expected string
	}{
		{name: "empty name", field: validation.FieldName, value: "", expected: "Name is required"},
		{name: "whitespace name", field: validation.FieldName, value: "   ", expected: "Name is required"},
		{name: "one-char name", field: validation.FieldName, value: "A", expected: "Name must be at least 2 characters"},
		{name: "name trimmed before length check", field: validation.FieldName, value: " A ", expected: "Name must be at least 2 characters"},
		{name: "empty phone", field: validation.FieldPhoneNumber, value: "", expected: "Phone number is required"},
		{name: "empty date", field: validation.FieldDate, value: "", expected: "Date is required"},
		{name: "malformed date", field: validation.FieldDate, value: "01/06/2025", expected: "Date must be in YYYY-MM-DD format"},
		{name: "yesterday", field: validation.FieldDate, value: "2025-05-29", expected: "Please select a future date"},
		{name: "same day midnight already passed", field: validation.FieldDate, value: "2025-05-30", expected: "Please select a future date"},
		{name: "empty time", field: validation.FieldTime, value: "", expected: "Time is required"},
		{name: "malformed time", field: validation.FieldTime, value: "7:3", expected: "Time must be in HH:MM format"},
		{name: "empty reason", field: validation.FieldReason, value: "", expected: "Reason is required"},
		{name: "short reason", field: validation.FieldReason, value: "Gym", expected: "Reason must be at least 5 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validation.ValidateField(tt.field, tt.value, now))
		})
	}
}

// The future-date rule is evaluated against the now passed in, so a date
// that was valid at blur time becomes invalid once midnight passes.
func TestValidateField_DateRevalidatedAtSubmit(t *testing.T) {
	beforeMidnight := time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC)
	afterMidnight := time.Date(2025, 6, 1, 0, 1, 0, 0, time.UTC)

	assert.Empty(t, validation.ValidateField(validation.FieldDate, "2025-06-01", beforeMidnight))
	assert.Equal(t, "Please select a future date",
		validation.ValidateField(validation.FieldDate, "2025-06-01", afterMidnight))
}

// The date rule follows now's location. The same UTC instant can sit on
// different calendar days in different zones, so callers must pass now
// shifted into the zone the call is scheduled in.
func TestValidateField_DateFollowsNowLocation(t *testing.T) {
	kiritimati, err := time.LoadLocation("Pacific/Kiritimati")
	if err != nil {
		t.Fatalf("failed to load zone: %v", err)
	}

	// 2025-06-01 23:00 UTC is already 2025-06-02 13:00 in UTC+14.
	now := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)

	assert.Empty(t, validation.ValidateField(validation.FieldDate, "2025-06-02", now))
	assert.Equal(t, "Please select a future date",
		validation.ValidateField(validation.FieldDate, "2025-06-02", now.In(kiritimati)))
}

func TestValidateRequest(t *testing.T) {
	now := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		req            models.ScheduleRequest
		expectedFields []string
	}{
		{
			name: "fully valid request",
			req: models.ScheduleRequest{
				Name:        "Al",
				PhoneNumber: "+15551234567",
				Date:        "2025-06-01",
				Time:        "06:00",
				Reason:      "Flight departure",
			},
			expectedFields: nil,
		},
		{
			name: "scheduling fields filled, identity fields empty",
			req: models.ScheduleRequest{
				Date:   "2025-06-01",
				Time:   "07:30",
				Reason: "Important meeting",
			},
			expectedFields: []string{validation.FieldName, validation.FieldPhoneNumber},
		},
		{
			name:           "everything empty",
			req:            models.ScheduleRequest{},
			expectedFields: []string{validation.FieldName, validation.FieldPhoneNumber, validation.FieldDate, validation.FieldTime, validation.FieldReason},
		},
		{
			name: "past date only",
			req: models.ScheduleRequest{
				Name:        "Al",
				PhoneNumber: "+15551234567",
				Date:        "2025-05-29",
				Time:        "06:00",
				Reason:      "Flight departure",
			},
			expectedFields: []string{validation.FieldDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateRequest(&tt.req, now)

			assert.Len(t, errs, len(tt.expectedFields))
			for _, field := range tt.expectedFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}
