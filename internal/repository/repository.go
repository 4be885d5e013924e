// Package repository provides data access for wake-call records.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var errNotCancellable = errors.New("wake call does not exist or is no longer cancellable")

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db        *sqlx.DB
	wakeCalls WakeCallRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:        db,
		wakeCalls: NewWakeCallRepository(db),
	}
}

// WakeCalls returns the wake-call repository.
func (r *repositoryImpl) WakeCalls() WakeCallRepository {
	return r.wakeCalls
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
