package repository_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzaikin/wakecall/internal/models"
	"github.com/mzaikin/wakecall/internal/repository"
)

func TestWakeCallRepository_Create_Success(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWakeCallRepository(db)

	tests := []struct {
		name     string
		call     models.WakeCall
		validate func(t *testing.T, id string)
	}{
		{
			name: "create scheduled call",
			call: models.WakeCall{
				UserID:      "user-1",
				ScheduledAt: time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC),
				Reason:      "Flight departure",
				Status:      models.CallStatusScheduled,
				Retries:     0,
				PhoneNumber: sql.NullString{String: "+15551234567", Valid: true},
			},
			validate: func(t *testing.T, id string) {
				var call models.WakeCall
				err := db.Get(&call, "SELECT * FROM wake_calls WHERE id = $1", id)
				require.NoError(t, err)

				assert.Equal(t, "user-1", call.UserID)
				assert.Equal(t, models.CallStatusScheduled, call.Status)
				assert.Equal(t, 0, call.Retries)
				assert.True(t, call.ScheduledAt.Equal(time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC)))
				assert.True(t, call.PhoneNumber.Valid)
				assert.Equal(t, "+15551234567", call.PhoneNumber.String)
				assert.False(t, call.CreatedAt.IsZero())
			},
		},
		{
			name: "create call without phone number",
			call: models.WakeCall{
				UserID:      "user-2",
				ScheduledAt: time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC),
				Reason:      "Job interview",
				Status:      models.CallStatusScheduled,
			},
			validate: func(t *testing.T, id string) {
				var call models.WakeCall
				err := db.Get(&call, "SELECT * FROM wake_calls WHERE id = $1", id)
				require.NoError(t, err)
				assert.False(t, call.PhoneNumber.Valid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)

			id, err := repo.Create(&tt.call)
			require.NoError(t, err)
			assert.NotEmpty(t, id)

			tt.validate(t, id)
		})
	}
}

func TestWakeCallRepository_Create_Failure(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWakeCallRepository(db)

	t.Run("status outside the lifecycle is rejected", func(t *testing.T) {
		_, err := repo.Create(&models.WakeCall{
			UserID:      "user-1",
			ScheduledAt: time.Now().Add(time.Hour),
			Reason:      "Test",
			Status:      "snoozed",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "violates check constraint")
		assert.Equal(t, repository.KindInternal, repository.KindOf(err))
	})

	t.Run("closed database reports unavailable", func(t *testing.T) {
		closedDB, closedCleanup := setupTestDB(t)
		closedCleanup()
		closedRepo := repository.NewWakeCallRepository(closedDB)

		_, err := closedRepo.Create(&models.WakeCall{
			UserID:      "user-1",
			ScheduledAt: time.Now().Add(time.Hour),
			Reason:      "Test",
			Status:      models.CallStatusScheduled,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is closed")
	})
}

func TestWakeCallRepository_ErrorKind_RelationMissing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := db.Exec("DROP TABLE wake_calls CASCADE")
	require.NoError(t, err)

	repo := repository.NewWakeCallRepository(db)

	_, err = repo.ListByUser("user-1")
	require.Error(t, err)
	assert.Equal(t, repository.KindRelationMissing, repository.KindOf(err))
}

func TestWakeCallRepository_ListByUser(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWakeCallRepository(db)

	tests := []struct {
		name          string
		setupData     func() error
		userID        string
		expectedCount int
		validate      func(t *testing.T, calls []*models.WakeCall)
	}{
		{
			name: "calls ordered by scheduled_at descending",
			setupData: func() error {
				base := time.Now().Add(24 * time.Hour)
				return insertBulkTestCalls(db, 5, "user-1", base, time.Hour, models.CallStatusScheduled)
			},
			userID:        "user-1",
			expectedCount: 5,
			validate: func(t *testing.T, calls []*models.WakeCall) {
				for i := 1; i < len(calls); i++ {
					assert.True(t, !calls[i-1].ScheduledAt.Before(calls[i].ScheduledAt),
						"calls should be ordered by scheduled_at DESC")
				}
			},
		},
		{
			name: "other users' calls are not visible",
			setupData: func() error {
				base := time.Now().Add(24 * time.Hour)
				if err := insertBulkTestCalls(db, 2, "user-1", base, time.Hour, models.CallStatusScheduled); err != nil {
					return err
				}
				return insertBulkTestCalls(db, 3, "user-2", base, time.Hour, models.CallStatusCompleted)
			},
			userID:        "user-1",
			expectedCount: 2,
			validate: func(t *testing.T, calls []*models.WakeCall) {
				for _, call := range calls {
					assert.Equal(t, "user-1", call.UserID)
				}
			},
		},
		{
			name:          "no calls yields empty result",
			setupData:     func() error { return nil },
			userID:        "user-9",
			expectedCount: 0,
			validate: func(t *testing.T, calls []*models.WakeCall) {
				assert.Empty(t, calls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)

			require.NoError(t, tt.setupData())

			calls, err := repo.ListByUser(tt.userID)
			require.NoError(t, err)
			assert.Len(t, calls, tt.expectedCount)
			tt.validate(t, calls)
		})
	}
}

func TestWakeCallRepository_CancelScheduled(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWakeCallRepository(db)
	now := time.Now()

	tests := []struct {
		name         string
		setup        func() (string, error)
		userID       string
		expectedKind repository.ErrorKind
		deleted      bool
	}{
		{
			name: "future scheduled call is cancelled",
			setup: func() (string, error) {
				return insertTestCall(db, "user-1", now.Add(24*time.Hour), models.CallStatusScheduled)
			},
			userID:  "user-1",
			deleted: true,
		},
		{
			name: "completed call is not cancellable",
			setup: func() (string, error) {
				return insertTestCall(db, "user-1", now.Add(24*time.Hour), models.CallStatusCompleted)
			},
			userID:       "user-1",
			expectedKind: repository.KindNotFound,
		},
		{
			name: "past scheduled call is not cancellable",
			setup: func() (string, error) {
				return insertTestCall(db, "user-1", now.Add(-time.Hour), models.CallStatusScheduled)
			},
			userID:       "user-1",
			expectedKind: repository.KindNotFound,
		},
		{
			name: "another user's call is not cancellable",
			setup: func() (string, error) {
				return insertTestCall(db, "user-2", now.Add(24*time.Hour), models.CallStatusScheduled)
			},
			userID:       "user-1",
			expectedKind: repository.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)

			id, err := tt.setup()
			require.NoError(t, err)

			err = repo.CancelScheduled(id, tt.userID, now)

			var count int
			require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM wake_calls WHERE id = $1", id))

			if tt.deleted {
				assert.NoError(t, err)
				assert.Zero(t, count)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, repository.KindOf(err))
				assert.Equal(t, 1, count, "record must survive a refused cancellation")
			}
		})
	}
}

func TestWakeCallRepository_Stats(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWakeCallRepository(db)
	now := time.Now()

	tests := []struct {
		name      string
		userID    string
		setupData func() error
		expected  models.CallStats
	}{
		{
			name:      "empty table",
			userID:    "user-1",
			setupData: func() error { return nil },
			expected:  models.CallStats{},
		},
		{
			name:   "counts only the requesting user's calls",
			userID: "user-1",
			setupData: func() error {
				if err := insertBulkTestCalls(db, 4, "user-1", now.Add(-48*time.Hour), time.Hour, models.CallStatusCompleted); err != nil {
					return err
				}
				if err := insertBulkTestCalls(db, 2, "user-1", now.Add(-24*time.Hour), time.Hour, models.CallStatusFailed); err != nil {
					return err
				}
				// One past-due scheduled call, not yet touched by the engine.
				if _, err := insertTestCall(db, "user-1", now.Add(-time.Hour), models.CallStatusScheduled); err != nil {
					return err
				}
				if _, err := insertTestCall(db, "user-1", now.Add(24*time.Hour), models.CallStatusScheduled); err != nil {
					return err
				}
				// Another user's calls must stay invisible.
				return insertBulkTestCalls(db, 5, "user-2", now.Add(24*time.Hour), time.Hour, models.CallStatusScheduled)
			},
			expected: models.CallStats{
				TotalCalls:      8,
				SuccessfulCalls: 4,
				FailedCalls:     2,
				UpcomingCalls:   1,
				SuccessRate:     50,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanupTestData(db)

			require.NoError(t, tt.setupData())

			stats, err := repo.Stats(tt.userID, now)
			require.NoError(t, err)
			assert.Equal(t, &tt.expected, stats)
		})
	}
}

func TestWakeCallRepository_ActiveUsers(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWakeCallRepository(db)
	now := time.Now()

	cleanupTestData(db)

	users, err := repo.ActiveUsers()
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, insertBulkTestCalls(db, 3, "user-b", now.Add(24*time.Hour), time.Hour, models.CallStatusScheduled))
	require.NoError(t, insertBulkTestCalls(db, 2, "user-a", now.Add(-24*time.Hour), time.Hour, models.CallStatusCompleted))

	users, err = repo.ActiveUsers()
	require.NoError(t, err)
	assert.Equal(t, []string{"user-a", "user-b"}, users)
}
