package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mzaikin/wakecall/internal/refresher"
)

type refresherService struct {
	refresher *refresher.Refresher
}

// NewRefresherService wires the periodic refresher to the stats snapshot.
func NewRefresherService(stats StatsService, interval time.Duration, logger *zap.Logger) RefresherService {
	return &refresherService{
		refresher: refresher.New(logger, interval, stats.Refresh),
	}
}

// Start launches the refresh loop. Shutdown goes through Stop and the
// refresher's stop channel, so the loop gets a fresh root context on
// every start and restarting after Stop works.
func (s *refresherService) Start() error {
	return s.refresher.Start(context.Background())
}

func (s *refresherService) Stop() error {
	return s.refresher.Stop()
}

func (s *refresherService) IsRunning() bool {
	return s.refresher.IsRunning()
}
