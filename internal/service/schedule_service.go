package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mzaikin/wakecall/internal/models"
	"github.com/mzaikin/wakecall/internal/repository"
	"github.com/mzaikin/wakecall/internal/validation"
	"github.com/mzaikin/wakecall/internal/webhook"
)

type scheduleService struct {
	repo     repository.Repository
	notifier webhook.Notifier
	drafts   DraftStore
	breaker  *CircuitBreaker
	logger   *zap.Logger
	now      func() time.Time
}

func NewScheduleService(repo repository.Repository, notifier webhook.Notifier, drafts DraftStore, breaker *CircuitBreaker, logger *zap.Logger) ScheduleService {
	return &scheduleService{
		repo:     repo,
		notifier: notifier,
		drafts:   drafts,
		breaker:  breaker,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit validates the request, then performs both writes: the database
// insert and the webhook notification. The webhook is attempted even when
// the insert fails, and vice versa, so each channel reports its own
// result. The two errors are reconciled into a single outcome for the
// caller.
func (s *scheduleService) Submit(ctx context.Context, identity models.Identity, req *models.ScheduleRequest) (*Outcome, error) {
	now := s.now()

	loc := time.UTC
	if req.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(req.Timezone)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{
				"timezone": "Unknown timezone",
			}}
		}
	}

	// The future-date rule runs against the wall clock of the zone the
	// call is scheduled in, not the server's. Validating in the server
	// zone would let an east-of-server date pass while the combined
	// instant is already hours in the past.
	if fieldErrs := validation.ValidateRequest(req, now.In(loc)); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	scheduledAt, err := CombineDateTime(req.Date, req.Time, req.Timezone)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{
			"timezone": "Unknown timezone",
		}}
	}

	call := &models.WakeCall{
		UserID:      identity.ID,
		ScheduledAt: scheduledAt,
		Reason:      req.Reason,
		Status:      models.CallStatusScheduled,
		Retries:     0,
		PhoneNumber: sql.NullString{String: req.PhoneNumber, Valid: true},
	}

	id, storeErr := s.repo.WakeCalls().Create(call)
	if storeErr != nil {
		s.logger.Error("Failed to insert wake call",
			zap.String("user_id", identity.ID),
			zap.Error(storeErr),
		)
	}

	payload := &models.WebhookPayload{
		ID:          id,
		UserID:      identity.ID,
		Email:       identity.Email,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Reason:      req.Reason,
		ScheduledAt: scheduledAt.Format(time.RFC3339),
		Status:      string(models.CallStatusScheduled),
		Retries:     0,
	}

	webhookErr := s.breaker.Execute(ctx, func() error {
		return s.notifier.Notify(ctx, payload)
	})
	if webhookErr != nil {
		s.logger.Error("Failed to notify workflow engine",
			zap.String("user_id", identity.ID),
			zap.Error(webhookErr),
		)
	}

	outcome := Reconcile(storeErr, webhookErr)
	if storeErr == nil {
		outcome.CallID = id
	}

	if outcome.Kind == OutcomeBothOK {
		// Best effort: a stale draft is an annoyance, not a failure.
		if _, err := s.drafts.ClearScheduling(ctx, identity.ID); err != nil {
			s.logger.Warn("Failed to clear draft after submission",
				zap.String("user_id", identity.ID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Submission reconciled",
		zap.String("user_id", identity.ID),
		zap.String("outcome", string(outcome.Kind)),
		zap.String("call_id", outcome.CallID),
	)

	return &outcome, nil
}

func (s *scheduleService) ListCalls(identity models.Identity) ([]*models.WakeCall, error) {
	calls, err := s.repo.WakeCalls().ListByUser(identity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wake calls: %w", err)
	}
	return calls, nil
}

// Cancel removes a still-scheduled future call owned by the user. The
// ownership and state checks live in the repository predicate, so a call
// that is not cancellable is indistinguishable from one that never
// existed.
func (s *scheduleService) Cancel(identity models.Identity, callID string) error {
	return s.repo.WakeCalls().CancelScheduled(callID, identity.ID, s.now())
}

func (s *scheduleService) GetCircuitBreakerStatus() (BreakerState, uint32, uint32) {
	requests, failures := s.breaker.GetCounts()
	return s.breaker.GetState(), requests, failures
}

// CombineDateTime resolves the form's local date and wall-clock time in
// the given IANA zone and returns the absolute instant in UTC. An empty
// zone means UTC.
func CombineDateTime(date, clock, timezone string) (time.Time, error) {
	loc := time.UTC
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to resolve timezone %q: %w", timezone, err)
		}
	}

	t, err := time.ParseInLocation(validation.DateLayout+" "+validation.TimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to combine date and time: %w", err)
	}
	return t.UTC(), nil
}
