package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/BuyerMerchant_Go/internal/bootstrap"
	"github.com/osse101/BuyerMerchant_Go/internal/config"
	"github.com/osse101/BuyerMerchant_Go/internal/database"
	"github.com/osse101/BuyerMerchant_Go/internal/database/postgres"
)

func main() {
	catalogPath := flag.String("catalog", config.ConfigPathCatalog, "item catalog to load after the reset")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbName := envOr("DB_NAME", "buyermerchant")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Connect to the maintenance database to manage the application one
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	serverPool, err := database.NewPool(serverConnString, 2, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()
	`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", dbName)
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", dbName)
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	serverPool.Close()

	appConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
	pool, err := database.NewPool(appConnString, 2, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", dbName, err)
	}
	defer pool.Close()

	log.Println("Applying migrations...")
	if err := database.MigratePostgres(ctx, pool); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	if _, err := bootstrap.SyncCatalog(ctx, *catalogPath, postgres.NewTemplateRepository(pool)); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	log.Printf("Database %s reset, migrated and seeded from %s\n", dbName, *catalogPath)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
