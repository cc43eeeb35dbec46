package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"carbon_backend/internal/app/router"
	activityadapters "carbon_backend/internal/feature/activity/adapters"
	activityhandler "carbon_backend/internal/feature/activity/transport/handler"
	activityusecase "carbon_backend/internal/feature/activity/usecase"
	authadapters "carbon_backend/internal/feature/auth/adapters"
	authhandler "carbon_backend/internal/feature/auth/transport/handler"
	authusecase "carbon_backend/internal/feature/auth/usecase"
	datasetadapters "carbon_backend/internal/feature/datasets/adapters"
	datasethandler "carbon_backend/internal/feature/datasets/transport/handler"
	datasetusecase "carbon_backend/internal/feature/datasets/usecase"
	reporthandler "carbon_backend/internal/feature/report/transport/handler"
	reportusecase "carbon_backend/internal/feature/report/usecase"
	"carbon_backend/internal/platform/cache"
	infradb "carbon_backend/internal/platform/db"
	jwtmw "carbon_backend/internal/platform/jwt"
	infraredis "carbon_backend/internal/platform/redis"
)

func main() {
	// Local development config; no-op when .env is absent
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis (optional)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	activityRepo := activityadapters.NewActivityRepository(db)
	datasetRepo := datasetadapters.NewDatasetRepository(db)

	// Dataset reads go through the Redis cache until the next daily refresh
	ttl := cache.TimeUntilNextMidnightUTC()
	cachedDatasetRepo := cache.NewCachingDatasetRepository(rdb, ttl, datasetRepo, "datasets")

	// JWT
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := jwtmw.NewGenerator(secret, 24*time.Hour)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	activityUC := activityusecase.NewActivityUsecase(activityRepo)
	reportUC := reportusecase.NewReportUsecase(activityRepo)
	datasetUC := datasetusecase.NewDatasetUsecase(cachedDatasetRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	activityH := activityhandler.NewActivityHandler(activityUC)
	reportH := reporthandler.NewReportHandler(reportUC)
	datasetH := datasethandler.NewDatasetHandler(datasetUC)

	router := router.NewRouter(authH, activityH, reportH, datasetH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
