package service

import (
	"fmt"
	"sort"
	"strings"
)

type HealthState string

const (
	HealthStateHealthy   HealthState = "healthy"
	HealthStateDegraded  HealthState = "degraded"
	HealthStateUnhealthy HealthState = "unhealthy"
)

type ComponentState string

const (
	ComponentConnected    ComponentState = "connected"
	ComponentDisconnected ComponentState = "disconnected"
	ComponentRunning      ComponentState = "running"
	ComponentStopped      ComponentState = "stopped"
)

type HealthStatus struct {
	Status               HealthState    `json:"status"`
	RefresherStatus      ComponentState `json:"refresher_status"`
	DatabaseStatus       ComponentState `json:"database_status"`
	RedisStatus          ComponentState `json:"redis_status"`
	CircuitBreakerStatus string         `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  BreakerState   `json:"circuit_breaker_state,omitempty"`
}

// ValidationError carries the per-field messages for a rejected request.
// It is produced before any side effect is attempted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}
