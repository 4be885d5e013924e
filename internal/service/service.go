package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/mzaikin/wakecall/internal/config"
	"github.com/mzaikin/wakecall/internal/draft"
	"github.com/mzaikin/wakecall/internal/repository"
	"github.com/mzaikin/wakecall/internal/webhook"
)

type Service struct {
	Schedule  ScheduleService
	Drafts    DraftStore
	Stats     StatsService
	Refresher RefresherService
	Health    HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	breaker := NewCircuitBreaker(&cfg.Webhook.CircuitBreaker, logger)
	notifier := webhook.NewClient(cfg.Webhook)

	draftTTL := time.Duration(cfg.Draft.TTLHours) * time.Hour
	drafts := draft.NewStore(draft.NewRedisKV(redisClient), draftTTL, logger)

	interval := time.Duration(cfg.Refresher.IntervalMinutes) * time.Minute

	scheduleService := NewScheduleService(repo, notifier, drafts, breaker, logger)
	// The snapshot stays valid for two intervals so a single missed tick
	// does not force readers back onto the database.
	statsService := NewStatsService(repo, redisClient, 2*interval, logger)
	refresherService := NewRefresherService(statsService, interval, logger)
	healthService := NewHealthService(repo, redisClient, refresherService, scheduleService)

	return &Service{
		Schedule:  scheduleService,
		Drafts:    drafts,
		Stats:     statsService,
		Refresher: refresherService,
		Health:    healthService,
	}
}
