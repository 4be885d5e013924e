package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/mzaikin/wakecall/internal/models"
	"github.com/mzaikin/wakecall/internal/repository"
)

const statsCacheKeyPrefix = "wake_call_stats:"

func statsCacheKey(userID string) string {
	return statsCacheKeyPrefix + userID
}

type statsService struct {
	repo     repository.Repository
	redis    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewStatsService(repo repository.Repository, redisClient *redis.Client, cacheTTL time.Duration, logger *zap.Logger) StatsService {
	return &statsService{
		repo:     repo,
		redis:    redisClient,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// GetStats serves the user's cached snapshot when one exists and falls
// back to a live aggregate otherwise. The fallback result is written back
// to the cache so the next reader is cheap again.
func (s *statsService) GetStats(ctx context.Context, userID string) (*models.CallStats, error) {
	cached, err := s.redis.Get(ctx, statsCacheKey(userID)).Result()
	if err == nil {
		var stats models.CallStats
		unmarshalErr := json.Unmarshal([]byte(cached), &stats)
		if unmarshalErr == nil {
			return &stats, nil
		}
		s.logger.Warn("Discarding corrupt stats snapshot",
			zap.String("user_id", userID),
			zap.Error(unmarshalErr),
		)
	} else if err != redis.Nil {
		s.logger.Warn("Stats cache unavailable, computing live", zap.Error(err))
	}

	stats, err := s.repo.WakeCalls().Stats(userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to compute call stats: %w", err)
	}

	s.cache(ctx, userID, stats)
	return stats, nil
}

// Refresh recomputes the aggregate for every user holding calls and
// replaces their cached snapshots. A failure on one user does not stop
// the others; the first error is reported after the sweep.
func (s *statsService) Refresh(ctx context.Context) error {
	users, err := s.repo.WakeCalls().ActiveUsers()
	if err != nil {
		return fmt.Errorf("failed to list users for stats refresh: %w", err)
	}

	now := s.now()
	var firstErr error
	refreshed := 0
	for _, userID := range users {
		if err := s.refreshUser(ctx, userID, now); err != nil {
			s.logger.Warn("Failed to refresh stats snapshot",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		refreshed++
	}

	s.logger.Debug("Stats snapshots refreshed",
		zap.Int("users", len(users)),
		zap.Int("refreshed", refreshed),
	)
	return firstErr
}

func (s *statsService) refreshUser(ctx context.Context, userID string, now time.Time) error {
	stats, err := s.repo.WakeCalls().Stats(userID, now)
	if err != nil {
		return fmt.Errorf("failed to refresh call stats: %w", err)
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to serialize call stats: %w", err)
	}

	if err := s.redis.Set(ctx, statsCacheKey(userID), data, s.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache call stats: %w", err)
	}

	return nil
}

func (s *statsService) cache(ctx context.Context, userID string, stats *models.CallStats) {
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, statsCacheKey(userID), data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache call stats", zap.Error(err))
	}
}
