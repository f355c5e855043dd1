package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	purgeadapters "maintenance_backend/internal/feature/purge/adapters"
	purgeusecase "maintenance_backend/internal/feature/purge/usecase"
	platformdb "maintenance_backend/internal/platform/db"
)

func main() {
	symbolsFlag := flag.String("symbols", "", "comma-separated symbols to purge (required)")
	yes := flag.Bool("yes", false, "actually delete the rows after backing them up")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	var symbols []string
	for _, s := range strings.Split(*symbolsFlag, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) == 0 {
		log.Fatal("no symbols given, use -symbols=SYM1,SYM2")
	}

	db := platformdb.OpenDB()
	repo := purgeadapters.NewPriceTableRepository(db, purgeadapters.DefaultSourceTable, purgeadapters.DefaultBackupTable)
	uc := purgeusecase.NewPurgeUsecase(repo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := uc.Purge(ctx, symbols, *yes)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("run %s: backed up %d rows for %d symbols", result.RunID, result.BackedUp, len(result.Symbols))
	if result.Confirmed {
		log.Printf("deleted %d rows from %s", result.Deleted, purgeadapters.DefaultSourceTable)
	} else {
		log.Println("backup only, re-run with -yes to delete")
	}
}
