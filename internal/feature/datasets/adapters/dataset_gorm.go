// Package adapters provides the repository implementations for the datasets feature.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carbon_backend/internal/feature/datasets/domain/entity"
	"carbon_backend/internal/feature/datasets/usecase"
)

type datasetGorm struct {
	db *gorm.DB
}

var _ usecase.WritableDatasetRepository = (*datasetGorm)(nil)

// NewDatasetRepository creates a new datasetGorm instance with the given gorm.DB connection.
func NewDatasetRepository(db *gorm.DB) *datasetGorm {
	return &datasetGorm{db: db}
}

// UpsertBatch inserts or updates emission points keyed by (dataset, series, year).
func (r *datasetGorm) UpsertBatch(ctx context.Context, points []entity.EmissionPoint) error {
	if len(points) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dataset"}, {Name: "series"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).CreateInBatches(points, 500).Error
}

// FindByDataset returns a dataset's points with year >= minYear,
// ordered by series then year ascending for stable chart output.
func (r *datasetGorm) FindByDataset(ctx context.Context, dataset string, minYear int) ([]entity.EmissionPoint, error) {
	var points []entity.EmissionPoint
	err := r.db.WithContext(ctx).
		Where("dataset = ? AND year >= ?", dataset, minYear).
		Order("series ASC, year ASC").
		Find(&points).Error
	if err != nil {
		return nil, err
	}
	return points, nil
}
