package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"homedrive-api/config"
	"homedrive-api/internal/infrastructure/db/postgres"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	dsn, err := cfg.DBDSN()
	if err != nil {
		log.Printf("DB config error: %v", err)
		os.Exit(1)
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Printf("failed to open database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := postgres.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
}
