// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

type CallStatus string

const (
	CallStatusScheduled CallStatus = "scheduled"
	CallStatusCompleted CallStatus = "completed"
	CallStatusFailed    CallStatus = "failed"
	CallStatusMissed    CallStatus = "missed"
	CallStatusCancelled CallStatus = "cancelled"
)

// WakeCall represents a wake-up call record in the database. The retries
// column is written once at creation and mutated only by the external
// call-placement engine.
type WakeCall struct {
	ID          string         `db:"id" json:"id"`
	UserID      string         `db:"user_id" json:"user_id"`
	ScheduledAt time.Time      `db:"scheduled_at" json:"scheduled_at"`
	Reason      string         `db:"reason" json:"reason"`
	Status      CallStatus     `db:"status" json:"status"`
	Retries     int            `db:"retries" json:"retries"`
	PhoneNumber sql.NullString `db:"phone_number" json:"phone_number,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// Identity is the authenticated user as asserted by the upstream auth
// provider. It is extracted once per request and passed down explicitly.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// ScheduleRequest is the user-submitted scheduling form. Date and Time
// stay strings until the submitter combines them into an absolute instant.
type ScheduleRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM, local to Timezone
	Reason      string `json:"reason"`
	Timezone    string `json:"timezone,omitempty"` // IANA name, empty means UTC
}

// FormDraft mirrors the scheduling form in a partially-filled state.
type FormDraft struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
}

// DraftPatch is a partial draft update; nil fields are left untouched.
type DraftPatch struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

// WebhookPayload is the body posted to the workflow engine. ID is omitted
// when the store insert failed before the webhook attempt.
type WebhookPayload struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Reason      string `json:"reason"`
	ScheduledAt string `json:"scheduled_at"` // ISO-8601 UTC
	Status      string `json:"status"`
	Retries     int    `json:"retries"`
}

// CallStats is the dashboard aggregate snapshot.
type CallStats struct {
	TotalCalls      int64   `json:"total_calls"`
	SuccessfulCalls int64   `json:"successful_calls"`
	FailedCalls     int64   `json:"failed_calls"`
	UpcomingCalls   int64   `json:"upcoming_calls"`
	SuccessRate     float64 `json:"success_rate"`
}
