package repository

import (
	"time"

	"github.com/mzaikin/wakecall/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// WakeCalls returns the wake-call repository
	WakeCalls() WakeCallRepository
}

// WakeCallRepository interface defines wake-call operations. Every error
// it returns is a *StoreError carrying an ErrorKind.
type WakeCallRepository interface {
	Create(call *models.WakeCall) (string, error)
	ListByUser(userID string) ([]*models.WakeCall, error)
	CancelScheduled(id, userID string, now time.Time) error
	Stats(userID string, now time.Time) (*models.CallStats, error)
	ActiveUsers() ([]string, error)
}
