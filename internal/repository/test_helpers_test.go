package repository_test

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mzaikin/wakecall/internal/models"
)

func insertTestCall(db *sqlx.DB, userID string, scheduledAt time.Time, status models.CallStatus) (string, error) {
	var id string
	query := `
		INSERT INTO wake_calls (user_id, scheduled_at, reason, status, retries, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	now := time.Now()
	phone := sql.NullString{String: "+15551234567", Valid: true}
	err := db.QueryRow(query, userID, scheduledAt.UTC(), "Test wake call", status, 0, phone, now, now).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert test call: %w", err)
	}

	return id, nil
}

func insertBulkTestCalls(db *sqlx.DB, count int, userID string, base time.Time, step time.Duration, status models.CallStatus) error {
	for i := 0; i < count; i++ {
		if _, err := insertTestCall(db, userID, base.Add(time.Duration(i)*step), status); err != nil {
			return fmt.Errorf("failed to insert call %d: %w", i, err)
		}
	}
	return nil
}
