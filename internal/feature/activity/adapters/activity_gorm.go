// Package adapters provides the repository implementations for the activity feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"carbon_backend/internal/feature/activity/domain/entity"
	"carbon_backend/internal/feature/activity/usecase"
	reportusecase "carbon_backend/internal/feature/report/usecase"
)

// activityGorm is the GORM-backed implementation of the activity repositories.
// It serves both the intake usecase (Create/ExistsOnDate) and the report
// usecase (FindOnDate/FindSince).
type activityGorm struct {
	db *gorm.DB
}

var _ usecase.ActivityRepository = (*activityGorm)(nil)
var _ reportusecase.ActivityRepository = (*activityGorm)(nil)

// NewActivityRepository creates a new activityGorm instance with the given gorm.DB connection.
func NewActivityRepository(db *gorm.DB) *activityGorm {
	return &activityGorm{db: db}
}

// Create inserts an activity record.
// A unique-key violation on (account_id, date) maps to ErrAlreadySubmittedToday,
// so the storage constraint and the pre-insert check surface the same error.
func (r *activityGorm) Create(ctx context.Context, rec *entity.ActivityRecord) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if (errors.As(err, &mysqlErr) && mysqlErr.Number == 1062) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadySubmittedToday
		}
		return err
	}
	return nil
}

// ExistsOnDate reports whether the account already has a record for the given day.
func (r *activityGorm) ExistsOnDate(ctx context.Context, accountID uint, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ActivityRecord{}).
		Where("account_id = ? AND date = ?", accountID, day).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindOnDate returns the account's records whose date equals the given day.
func (r *activityGorm) FindOnDate(ctx context.Context, accountID uint, day time.Time) ([]entity.ActivityRecord, error) {
	var recs []entity.ActivityRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND date = ?", accountID, day).
		Order("date ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// FindSince returns the account's records with date >= from, ordered by date ascending.
func (r *activityGorm) FindSince(ctx context.Context, accountID uint, from time.Time) ([]entity.ActivityRecord, error) {
	var recs []entity.ActivityRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND date >= ?", accountID, from).
		Order("date ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
