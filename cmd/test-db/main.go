package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/infrastructure/database"
)

// Connectivity check for the auth service's backing stores.
func main() {
	dsn := "host=localhost user=postgres password=postgres dbname=marketplace port=5432 sslmode=disable"
	if envDSN := os.Getenv("TEST_DATABASE_DSN"); envDSN != "" {
		dsn = envDSN
	}
	redisAddr := "localhost:6379"
	if envAddr := os.Getenv("TEST_REDIS_ADDR"); envAddr != "" {
		redisAddr = envAddr
	}

	fmt.Println("Auth store connectivity check")
	fmt.Println("=============================")

	db, err := database.Open(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	fmt.Println("✓ Database connection successful")

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run auto-migration: %v", err)
	}
	fmt.Println("✓ AutoMigrate completed successfully")

	var userCount int64
	if err := db.Raw("SELECT COUNT(*) FROM users").Scan(&userCount).Error; err != nil {
		log.Fatalf("Failed to query users table: %v", err)
	}
	fmt.Printf("✓ Users table accessible (current count: %d)\n", userCount)

	var tokenCount int64
	if err := db.Raw("SELECT COUNT(*) FROM refresh_tokens").Scan(&tokenCount).Error; err != nil {
		log.Fatalf("Failed to query refresh_tokens table: %v", err)
	}
	fmt.Printf("✓ Refresh tokens table accessible (current count: %d)\n", tokenCount)

	rdb := database.NewRedis(redisAddr, os.Getenv("TEST_REDIS_PASSWORD"), 0)
	if err := rdb.Ping(context.Background()); err != nil {
		log.Fatalf("Failed to ping Redis: %v", err)
	}
	fmt.Println("✓ Redis connection successful")

	fmt.Println("\nAll auth stores are reachable.")
}
