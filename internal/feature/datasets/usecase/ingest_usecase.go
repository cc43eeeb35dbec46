package usecase

import (
	"context"
	"log/slog"

	"carbon_backend/internal/feature/datasets/domain/entity"
	"carbon_backend/internal/shared/ratelimiter"
)

// SourceRepository abstracts the external source the datasets are ingested from.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SourceRepository interface {
	// FetchDataset downloads and parses one dataset into emission points.
	FetchDataset(ctx context.Context, d entity.Dataset) ([]entity.EmissionPoint, error)
}

// WritableDatasetRepository extends the read layer with batch writes,
// used only by the ingest path.
type WritableDatasetRepository interface {
	DatasetRepository

	// UpsertBatch inserts or updates emission points keyed by (dataset, series, year).
	UpsertBatch(ctx context.Context, points []entity.EmissionPoint) error
}

// IngestUsecase pulls the registry datasets from the external source
// and persists them.
type IngestUsecase struct {
	source      SourceRepository
	points      WritableDatasetRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase creates a new IngestUsecase.
func NewIngestUsecase(source SourceRepository, points WritableDatasetRepository, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{source: source, points: points, rateLimiter: rateLimiter}
}

// IngestAll refreshes every dataset in the registry. A failure on one
// dataset is logged and the remaining datasets still run; requests are
// spaced by the rate limiter to stay polite toward the source.
func (iu *IngestUsecase) IngestAll(ctx context.Context) error {
	for _, d := range Registry {
		iu.rateLimiter.WaitIfNeeded()
		points, err := iu.source.FetchDataset(ctx, d)
		if err != nil {
			slog.Error("failed to fetch dataset", "dataset", d.Slug, "error", err)
			continue
		}
		if err := iu.points.UpsertBatch(ctx, points); err != nil {
			slog.Error("failed to store dataset", "dataset", d.Slug, "error", err)
			continue
		}
		slog.Info("dataset ingested", "dataset", d.Slug, "points", len(points))
	}
	return nil
}
