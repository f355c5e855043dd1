package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"maintenance_backend/internal/app/router"
	authadapters "maintenance_backend/internal/feature/auth/adapters"
	authhandler "maintenance_backend/internal/feature/auth/transport/handler"
	authusecase "maintenance_backend/internal/feature/auth/usecase"
	purgeadapters "maintenance_backend/internal/feature/purge/adapters"
	purgehandler "maintenance_backend/internal/feature/purge/transport/handler"
	purgeusecase "maintenance_backend/internal/feature/purge/usecase"
	recommendationshandler "maintenance_backend/internal/feature/recommendations/transport/handler"
	recommendationsusecase "maintenance_backend/internal/feature/recommendations/usecase"
	removaladapters "maintenance_backend/internal/feature/removallog/adapters"
	removalhandler "maintenance_backend/internal/feature/removallog/transport/handler"
	removalusecase "maintenance_backend/internal/feature/removallog/usecase"
	stalenessadapters "maintenance_backend/internal/feature/staleness/adapters"
	stalenesshandler "maintenance_backend/internal/feature/staleness/transport/handler"
	stalenessusecase "maintenance_backend/internal/feature/staleness/usecase"
	validationhandler "maintenance_backend/internal/feature/validation/transport/handler"
	validationusecase "maintenance_backend/internal/feature/validation/usecase"
	"maintenance_backend/internal/platform/cache"
	platformdb "maintenance_backend/internal/platform/db"
	"maintenance_backend/internal/platform/externalapi/twelvedata"
	platformhttp "maintenance_backend/internal/platform/http"
	jwtmw "maintenance_backend/internal/platform/jwt"
	platformredis "maintenance_backend/internal/platform/redis"
	"maintenance_backend/internal/shared/ratelimiter"
)

const tokenTTL = 24 * time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
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
	priceHistoryRepo := stalenessadapters.NewPriceHistoryRepository(db)
	priceTableRepo := purgeadapters.NewPriceTableRepository(db, purgeadapters.DefaultSourceTable, purgeadapters.DefaultBackupTable)
	removalRepo := removaladapters.NewRemovalLogRepository(db)
	operatorRepo := authadapters.NewOperatorMySQL(db)

	// Staleness scan, wrapped with the Redis report cache
	scanUC := stalenessusecase.NewScanUsecase(priceHistoryRepo)
	cachedScan := cache.NewCachingReportSource(rdb, 0, scanUC, "staleness")

	// Live quote check is only wired when an API key is configured
	var quoteRepo validationusecase.QuoteRepository
	tdCfg := twelvedata.LoadConfig()
	if tdCfg.Enabled() {
		quoteRepo = twelvedata.NewTwelveDataQuotes(tdCfg, platformhttp.NewHTTPClient(tdCfg.Timeout))
	}
	limiter := ratelimiter.NewRateLimiter(8, time.Minute)

	// Usecase
	validateUC := validationusecase.NewValidateUsecase(cachedScan, quoteRepo, limiter)
	removalUC := removalusecase.NewRemovalUsecase(removalRepo)
	recommendUC := recommendationsusecase.NewRecommendUsecase(
		cachedScan, validateUC, priceHistoryRepo, removalUC,
		func(symbols []string, generatedAt time.Time) string {
			return purgeusecase.RenderSQLScript(purgeadapters.DefaultSourceTable, purgeadapters.DefaultBackupTable, symbols, generatedAt)
		},
	)
	purgeUC := purgeusecase.NewPurgeUsecase(priceTableRepo)

	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenTTL)
	authUC := authusecase.NewAuthUsecase(operatorRepo, jwtGen)

	// Bootstrap operator from the environment
	if err := authUC.EnsureOperator(context.Background(), os.Getenv("OPERATOR_EMAIL"), os.Getenv("OPERATOR_PASSWORD")); err != nil {
		log.Println("[WARN] Failed to register bootstrap operator:", err)
	}

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	stalenessH := stalenesshandler.NewStalenessHandler(cachedScan)
	validationH := validationhandler.NewValidationHandler(validateUC)
	recommendationsH := recommendationshandler.NewRecommendationsHandler(recommendUC)
	purgeH := purgehandler.NewPurgeHandler(purgeUC)
	removalsH := removalhandler.NewRemovalHandler(removalUC)

	r := router.NewRouter(authH, stalenessH, validationH, recommendationsH, purgeH, removalsH)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
