package service

import (
	"context"

	"github.com/mzaikin/wakecall/internal/models"
)

// ScheduleService owns the submission flow and wake-call lifecycle
// operations available to the user.
type ScheduleService interface {
	Submit(ctx context.Context, identity models.Identity, req *models.ScheduleRequest) (*Outcome, error)
	ListCalls(identity models.Identity) ([]*models.WakeCall, error)
	Cancel(identity models.Identity, callID string) error
	GetCircuitBreakerStatus() (state BreakerState, requests uint32, failures uint32)
}

// DraftStore is the per-user form draft cache.
type DraftStore interface {
	Load(ctx context.Context, userID string) (*models.FormDraft, error)
	Save(ctx context.Context, userID string, patch *models.DraftPatch) (*models.FormDraft, error)
	ClearScheduling(ctx context.Context, userID string) (*models.FormDraft, error)
	Clear(ctx context.Context, userID string) error
}

// StatsService serves the per-user dashboard aggregate snapshot.
type StatsService interface {
	GetStats(ctx context.Context, userID string) (*models.CallStats, error)
	Refresh(ctx context.Context) error
}

// RefresherService controls the periodic stats snapshot task.
type RefresherService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}
