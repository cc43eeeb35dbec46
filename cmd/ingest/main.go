package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"carbon_backend/internal/app/di"
	"carbon_backend/internal/feature/datasets/adapters"
	"carbon_backend/internal/feature/datasets/usecase"
	"carbon_backend/internal/platform/db"
	"carbon_backend/internal/shared/ratelimiter"
)

func main() {
	_ = godotenv.Load()

	db := db.OpenDB()
	source := di.NewOWIDClient()
	datasetRepo := adapters.NewDatasetRepository(db)

	// Keep well under any polite-use ceiling of the public endpoints
	limiter := ratelimiter.NewRateLimiter(10, time.Minute)
	uc := usecase.NewIngestUsecase(source, datasetRepo, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := uc.IngestAll(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
