package repository

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mzaikin/wakecall/internal/models"
)

type wakeCallRepository struct {
	db *sqlx.DB
}

func NewWakeCallRepository(db *sqlx.DB) WakeCallRepository {
	return &wakeCallRepository{
		db: db,
	}
}

// Create inserts a new wake call and returns the generated identifier.
func (r *wakeCallRepository) Create(call *models.WakeCall) (string, error) {
	query := `
		INSERT INTO wake_calls (user_id, scheduled_at, reason, status, retries, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	now := time.Now()
	var id string
	err := r.db.QueryRow(query,
		call.UserID,
		call.ScheduledAt.UTC(),
		call.Reason,
		call.Status,
		call.Retries,
		call.PhoneNumber,
		now,
		now,
	).Scan(&id)
	if err != nil {
		return "", wrapError("create wake call", err)
	}

	return id, nil
}

// ListByUser retrieves the user's wake calls, newest scheduled first.
func (r *wakeCallRepository) ListByUser(userID string) ([]*models.WakeCall, error) {
	query := `
		SELECT id, user_id, scheduled_at, reason, status, retries, phone_number, created_at, updated_at
		FROM wake_calls
		WHERE user_id = $1
		ORDER BY scheduled_at DESC
	`

	var calls []*models.WakeCall
	if err := r.db.Select(&calls, query, userID); err != nil {
		return nil, wrapError("list wake calls", err)
	}

	return calls, nil
}

// CancelScheduled deletes a wake call. The predicate carries the whole
// cancellation rule: only the owner's record, only while still scheduled,
// only while its instant is in the future.
func (r *wakeCallRepository) CancelScheduled(id, userID string, now time.Time) error {
	query := `
		DELETE FROM wake_calls
		WHERE id = $1 AND user_id = $2 AND status = $3 AND scheduled_at > $4
	`

	res, err := r.db.Exec(query, id, userID, models.CallStatusScheduled, now.UTC())
	if err != nil {
		return wrapError("cancel wake call", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return wrapError("cancel wake call", err)
	}
	if affected == 0 {
		return &StoreError{Kind: KindNotFound, Op: "cancel wake call", Err: errNotCancellable}
	}

	return nil
}

// Stats aggregates the dashboard counters for one user in one query.
func (r *wakeCallRepository) Stats(userID string, now time.Time) (*models.CallStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = $2) AS successful,
			COUNT(*) FILTER (WHERE status = $3) AS failed,
			COUNT(*) FILTER (WHERE status = $4 AND scheduled_at > $5) AS upcoming
		FROM wake_calls
		WHERE user_id = $1
	`

	var row struct {
		Total      int64 `db:"total"`
		Successful int64 `db:"successful"`
		Failed     int64 `db:"failed"`
		Upcoming   int64 `db:"upcoming"`
	}
	err := r.db.Get(&row, query,
		userID,
		models.CallStatusCompleted,
		models.CallStatusFailed,
		models.CallStatusScheduled,
		now.UTC(),
	)
	if err != nil {
		return nil, wrapError("wake call stats", err)
	}

	stats := &models.CallStats{
		TotalCalls:      row.Total,
		SuccessfulCalls: row.Successful,
		FailedCalls:     row.Failed,
		UpcomingCalls:   row.Upcoming,
	}
	if row.Total > 0 {
		stats.SuccessRate = float64(row.Successful) / float64(row.Total) * 100
	}

	return stats, nil
}

// ActiveUsers lists every user holding at least one wake call, for the
// periodic per-user snapshot refresh.
func (r *wakeCallRepository) ActiveUsers() ([]string, error) {
	var users []string
	err := r.db.Select(&users, `SELECT DISTINCT user_id FROM wake_calls ORDER BY user_id`)
	if err != nil {
		return nil, wrapError("list active users", err)
	}

	return users, nil
}
