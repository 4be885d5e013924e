package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mzaikin/wakecall/internal/repository"
)

type healthService struct {
	repo            repository.Repository
	redisClient     *redis.Client
	refresher       RefresherService
	scheduleService ScheduleService
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	refresherService RefresherService,
	scheduleService ScheduleService,
) HealthService {
	return &healthService{
		repo:            repo,
		redisClient:     redisClient,
		refresher:       refresherService,
		scheduleService: scheduleService,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: HealthStateHealthy,
	}

	if s.refresher.IsRunning() {
		status.RefresherStatus = ComponentRunning
	} else {
		status.RefresherStatus = ComponentStopped
	}

	status.DatabaseStatus = s.checkDatabaseHealth()
	status.RedisStatus = s.checkRedisHealth()

	state, requests, failures := s.scheduleService.GetCircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	if status.DatabaseStatus != ComponentConnected || status.RedisStatus != ComponentConnected {
		status.Status = HealthStateUnhealthy
	}

	// An open breaker means the webhook channel is down but the store
	// still works, so submissions degrade rather than fail outright.
	if state == BreakerOpen {
		status.Status = HealthStateDegraded
	}

	return status
}

func (s *healthService) checkDatabaseHealth() ComponentState {
	if err := s.repo.Ping(); err != nil {
		return ComponentDisconnected
	}
	return ComponentConnected
}

func (s *healthService) checkRedisHealth() ComponentState {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return ComponentDisconnected
	}
	return ComponentConnected
}
