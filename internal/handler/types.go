package handler

import (
	"time"

	"github.com/mzaikin/wakecall/internal/models"
	"github.com/mzaikin/wakecall/internal/service"
)

// ErrorResponse is the error envelope for every non-2xx reply. Details
// carries per-field validation messages when present.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// SubmitResponse reports the reconciled result of a submission. The
// outcome kind is returned even on failure statuses so the form can tell
// a lost record from a lost notification.
type SubmitResponse struct {
	Outcome service.OutcomeKind `json:"outcome"`
	Message string              `json:"message"`
	CallID  string              `json:"call_id,omitempty"`
}

// ListCallsResponse wraps the user's wake calls.
type ListCallsResponse struct {
	Calls []*models.WakeCall `json:"calls"`
	Total int                `json:"total"`
}

type RefresherStatus string

const (
	RefresherStatusStarted RefresherStatus = "started"
	RefresherStatusStopped RefresherStatus = "stopped"
)

// RefresherResponse reports a refresher control action.
type RefresherResponse struct {
	Status  RefresherStatus `json:"status"`
	Message string          `json:"message"`
}

// HealthResponse is the liveness and readiness report.
type HealthResponse struct {
	Status               service.HealthState    `json:"status"`
	RefresherStatus      service.ComponentState `json:"refresher_status,omitempty"`
	DatabaseStatus       service.ComponentState `json:"database_status,omitempty"`
	RedisStatus          service.ComponentState `json:"redis_status,omitempty"`
	CircuitBreakerStatus string                 `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  service.BreakerState   `json:"circuit_breaker_state,omitempty"`
	Timestamp            time.Time              `json:"timestamp"`
}
