package refresher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Refresher periodically runs a refresh task. The task carries no
// user-visible state transitions, so a failed tick is logged and the
// next tick simply tries again.
type Refresher struct {
	logger    *zap.Logger
	interval  time.Duration
	taskFunc  func(context.Context) error
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

func New(logger *zap.Logger, interval time.Duration, taskFunc func(context.Context) error) *Refresher {
	return &Refresher{
		logger:   logger,
		interval: interval,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the refresh loop. The task runs once immediately so the
// snapshot is warm before the first interval elapses.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return ErrRefresherAlreadyRunning
	}

	r.isRunning = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})

	go r.run(ctx)

	r.logger.Info("Stats refresher started", zap.Duration("interval", r.interval))
	return nil
}

// Stop halts the loop and waits for the current tick to finish.
func (r *Refresher) Stop() error {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return ErrRefresherNotRunning
	}
	r.mu.Unlock()

	close(r.stopCh)
	<-r.doneCh

	r.mu.Lock()
	r.isRunning = false
	r.mu.Unlock()

	r.logger.Info("Stats refresher stopped")
	return nil
}

// IsRunning reports whether the loop is currently active.
func (r *Refresher) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isRunning
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.doneCh)
	defer func() {
		r.mu.Lock()
		r.isRunning = false
		r.mu.Unlock()
	}()

	if err := r.refresh(ctx); err != nil {
		r.logger.Error("Initial snapshot refresh failed", zap.Error(err))
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Refresher context canceled")
			return
		case <-r.stopCh:
			r.logger.Info("Refresher stop signal received")
			return
		case <-ticker.C:
			if err := r.refresh(ctx); err != nil {
				r.logger.Error("Snapshot refresh failed", zap.Error(err))
			}
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) error {
	// A tick must never outlive its interval, or ticks would pile up
	// behind a slow database.
	taskCtx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	return r.taskFunc(taskCtx)
}
