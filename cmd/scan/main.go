package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	purgeadapters "maintenance_backend/internal/feature/purge/adapters"
	purgeusecase "maintenance_backend/internal/feature/purge/usecase"
	recommendationsusecase "maintenance_backend/internal/feature/recommendations/usecase"
	removaladapters "maintenance_backend/internal/feature/removallog/adapters"
	removalusecase "maintenance_backend/internal/feature/removallog/usecase"
	stalenessadapters "maintenance_backend/internal/feature/staleness/adapters"
	stalenessusecase "maintenance_backend/internal/feature/staleness/usecase"
	validationusecase "maintenance_backend/internal/feature/validation/usecase"
	platformdb "maintenance_backend/internal/platform/db"
	"maintenance_backend/internal/platform/externalapi/twelvedata"
	platformhttp "maintenance_backend/internal/platform/http"
	"maintenance_backend/internal/shared/ratelimiter"
)

func main() {
	window := flag.Int("window", stalenessusecase.DefaultWindow, "number of recent trading days to scan")
	script := flag.Bool("script", false, "also print the SQL cleanup script")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	db := platformdb.OpenDB()

	priceHistoryRepo := stalenessadapters.NewPriceHistoryRepository(db)
	removalRepo := removaladapters.NewRemovalLogRepository(db)

	scanUC := stalenessusecase.NewScanUsecase(priceHistoryRepo)

	var quoteRepo validationusecase.QuoteRepository
	tdCfg := twelvedata.LoadConfig()
	if tdCfg.Enabled() {
		quoteRepo = twelvedata.NewTwelveDataQuotes(tdCfg, platformhttp.NewHTTPClient(tdCfg.Timeout))
	}
	limiter := ratelimiter.NewRateLimiter(8, time.Minute)

	validateUC := validationusecase.NewValidateUsecase(scanUC, quoteRepo, limiter)
	removalUC := removalusecase.NewRemovalUsecase(removalRepo)
	recommendUC := recommendationsusecase.NewRecommendUsecase(
		scanUC, validateUC, priceHistoryRepo, removalUC,
		func(symbols []string, generatedAt time.Time) string {
			return purgeusecase.RenderSQLScript(purgeadapters.DefaultSourceTable, purgeadapters.DefaultBackupTable, symbols, generatedAt)
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := recommendUC.GenerateReport(ctx, *window)
	if err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))

	if *script {
		sql, err := recommendUC.RenderCleanupScript(ctx, *window)
		if err != nil {
			if errors.Is(err, recommendationsusecase.ErrNoDelistedSecurities) {
				log.Println("no delisted securities, skipping cleanup script")
				os.Exit(0)
			}
			log.Fatal(err)
		}
		fmt.Println(sql)
	}
}
