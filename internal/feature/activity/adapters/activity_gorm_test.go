package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"carbon_backend/internal/feature/activity/domain/entity"
	"carbon_backend/internal/feature/activity/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.ActivityRecord{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// day is a shorthand for a calendar date at UTC midnight.
func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// record returns a valid activity record for the given account and date.
func record(accountID uint, date time.Time) *entity.ActivityRecord {
	return &entity.ActivityRecord{
		AccountID:      accountID,
		Date:           date,
		ElectricityKWh: 10,
		VehicleType:    entity.VehicleFourWheeler,
		DistanceKm:     20,
		DietType:       entity.DietVegetarian,
		Meals:          2,
		GarbageKg:      3,
	}
}

func TestActivityGorm_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewActivityRepository(db)

		rec := record(1, day(2025, 6, 15))
		err := repo.Create(context.Background(), rec)

		assert.NoError(t, err, "failed to create record")
		assert.NotZero(t, rec.ID, "ID is not set")
	})

	t.Run("unique index maps duplicate day to ErrAlreadySubmittedToday", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewActivityRepository(db)

		d := day(2025, 6, 15)
		require.NoError(t, repo.Create(context.Background(), record(1, d)))

		err := repo.Create(context.Background(), record(1, d))
		assert.ErrorIs(t, err, usecase.ErrAlreadySubmittedToday)

		// The table gains no new row
		var count int64
		require.NoError(t, db.Model(&entity.ActivityRecord{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("same day for another account is allowed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewActivityRepository(db)

		d := day(2025, 6, 15)
		require.NoError(t, repo.Create(context.Background(), record(1, d)))
		assert.NoError(t, repo.Create(context.Background(), record(2, d)))
	})
}

func TestActivityGorm_ExistsOnDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	d := day(2025, 6, 15)
	require.NoError(t, repo.Create(context.Background(), record(1, d)))

	exists, err := repo.ExistsOnDate(context.Background(), 1, d)
	require.NoError(t, err)
	assert.True(t, exists, "expected record for submitted day")

	exists, err = repo.ExistsOnDate(context.Background(), 1, day(2025, 6, 16))
	require.NoError(t, err)
	assert.False(t, exists, "expected no record for other day")

	exists, err = repo.ExistsOnDate(context.Background(), 2, d)
	require.NoError(t, err)
	assert.False(t, exists, "expected no record for other account")
}

func TestActivityGorm_FindOnDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	require.NoError(t, repo.Create(context.Background(), record(1, day(2025, 6, 14))))
	require.NoError(t, repo.Create(context.Background(), record(1, day(2025, 6, 15))))
	require.NoError(t, repo.Create(context.Background(), record(2, day(2025, 6, 15))))

	recs, err := repo.FindOnDate(context.Background(), 1, day(2025, 6, 15))
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, uint(1), recs[0].AccountID)
	assert.True(t, recs[0].Date.Equal(day(2025, 6, 15)))
}

func TestActivityGorm_FindSince(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)

	// Out of window, in window (x2), and another account's record
	require.NoError(t, repo.Create(context.Background(), record(1, day(2025, 6, 1))))
	require.NoError(t, repo.Create(context.Background(), record(1, day(2025, 6, 12))))
	require.NoError(t, repo.Create(context.Background(), record(1, day(2025, 6, 10))))
	require.NoError(t, repo.Create(context.Background(), record(2, day(2025, 6, 12))))

	recs, err := repo.FindSince(context.Background(), 1, day(2025, 6, 10))
	require.NoError(t, err)

	require.Len(t, recs, 2)
	// Ordered by date ascending, lower bound inclusive
	assert.True(t, recs[0].Date.Equal(day(2025, 6, 10)))
	assert.True(t, recs[1].Date.Equal(day(2025, 6, 12)))
	for _, r := range recs {
		assert.Equal(t, uint(1), r.AccountID)
	}
}
