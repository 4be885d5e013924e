// Package draft caches in-progress scheduling forms per user so a draft
// survives page reloads. The record is advisory: it is cleared only after
// a fully successful submission and is never treated as authoritative.
package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mzaikin/wakecall/internal/models"
)

const keyPrefix = "wake_call_form_data:"

// KV is the string-keyed get/set/remove surface the store needs. Get
// returns ErrKeyNotFound for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Store persists form drafts in a KV backend.
type Store struct {
	kv     KV
	ttl    time.Duration
	logger *zap.Logger
}

func NewStore(kv KV, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		ttl:    ttl,
		logger: logger,
	}
}

// Load returns the user's draft. A missing, partial or corrupt record
// yields an empty draft rather than an error: each field is decoded
// independently so one bad value cannot take the rest down with it.
func (s *Store) Load(ctx context.Context, userID string) (*models.FormDraft, error) {
	raw, err := s.kv.Get(ctx, keyPrefix+userID)
	if err != nil {
		if err == ErrKeyNotFound {
			return &models.FormDraft{}, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	return s.decode(raw), nil
}

// Save merges the patch onto the stored draft and writes the result back
// under the fixed per-user key.
func (s *Store) Save(ctx context.Context, userID string, patch *models.DraftPatch) (*models.FormDraft, error) {
	current, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.PhoneNumber != nil {
		current.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Date != nil {
		current.Date = *patch.Date
	}
	if patch.Time != nil {
		current.Time = *patch.Time
	}
	if patch.Reason != nil {
		current.Reason = *patch.Reason
	}

	if err := s.write(ctx, userID, current); err != nil {
		return nil, err
	}
	return current, nil
}

// ClearScheduling empties date, time and reason while keeping the user's
// identity fields for the next submission. The draft is rewritten in a
// single Set so no reader ever observes a half-cleared record.
func (s *Store) ClearScheduling(ctx context.Context, userID string) (*models.FormDraft, error) {
	current, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	current.Date = ""
	current.Time = ""
	current.Reason = ""

	if err := s.write(ctx, userID, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Clear removes the user's draft entirely.
func (s *Store) Clear(ctx context.Context, userID string) error {
	if err := s.kv.Del(ctx, keyPrefix+userID); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

func (s *Store) write(ctx context.Context, userID string, d *models.FormDraft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}

	if err := s.kv.Set(ctx, keyPrefix+userID, string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *Store) decode(raw string) *models.FormDraft {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		s.logger.Warn("Discarding corrupt draft record", zap.Error(err))
		return &models.FormDraft{}
	}

	d := &models.FormDraft{}
	assign := func(key string, dst *string) {
		rawField, ok := fields[key]
		if !ok {
			return
		}
		var v string
		if err := json.Unmarshal(rawField, &v); err != nil {
			s.logger.Warn("Discarding corrupt draft field", zap.String("field", key), zap.Error(err))
			return
		}
		*dst = v
	}

	assign("name", &d.Name)
	assign("phone_number", &d.PhoneNumber)
	assign("date", &d.Date)
	assign("time", &d.Time)
	assign("reason", &d.Reason)

	return d
}
