// Package usecase implements the business logic for the public emissions datasets.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"carbon_backend/internal/feature/datasets/domain/entity"
)

// ErrDatasetNotFound is returned for a slug outside the fixed registry.
var ErrDatasetNotFound = errors.New("dataset not found")

// Registry is the fixed set of datasets served for charting. The min
// years trim the sparse early decades of each source series.
var Registry = []entity.Dataset{
	{
		Slug:        "annual-co2",
		Title:       "Annual CO2 emissions including land use",
		GrapherSlug: "co2-including-land-use",
		MinYear:     1850,
	},
	{
		Slug:        "per-capita-co2",
		Title:       "Per capita CO2 emissions",
		GrapherSlug: "co-emissions-per-capita",
		MinYear:     1750,
	},
	{
		Slug:        "co2-by-region",
		Title:       "Annual CO2 emissions by world region",
		GrapherSlug: "annual-co-emissions-by-region",
		MinYear:     1750,
	},
	{
		Slug:        "ghg-by-sector",
		Title:       "Greenhouse gas emissions by sector",
		GrapherSlug: "ghg-emissions-by-sector",
		MinYear:     1990,
	},
}

// DatasetRepository abstracts the read layer for emission points.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type DatasetRepository interface {
	// FindByDataset returns the dataset's points with year >= minYear,
	// ordered by series then year ascending.
	FindByDataset(ctx context.Context, dataset string, minYear int) ([]entity.EmissionPoint, error)
}

// datasetUsecase serves the dataset registry and their chart series.
type datasetUsecase struct {
	points DatasetRepository
}

// NewDatasetUsecase creates a new datasetUsecase instance.
func NewDatasetUsecase(points DatasetRepository) *datasetUsecase {
	return &datasetUsecase{points: points}
}

// Lookup resolves a dataset slug against the registry.
func Lookup(slug string) (entity.Dataset, error) {
	for _, d := range Registry {
		if d.Slug == slug {
			return d, nil
		}
	}
	return entity.Dataset{}, fmt.Errorf("%w: %q", ErrDatasetNotFound, slug)
}

// List returns the dataset registry.
func (u *datasetUsecase) List(ctx context.Context) ([]entity.Dataset, error) {
	return Registry, nil
}

// Series returns the chart-ready points of one dataset, filtered to the
// dataset's min year.
func (u *datasetUsecase) Series(ctx context.Context, slug string) ([]entity.EmissionPoint, error) {
	d, err := Lookup(slug)
	if err != nil {
		return nil, err
	}
	return u.points.FindByDataset(ctx, d.Slug, d.MinYear)
}
