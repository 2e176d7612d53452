package main

import (
	"log"
	"os"

	"dr-dine-be/internal/model"
	"dr-dine-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: pgcrypto backs gen_random_uuid() column defaults
	log.Println("Step 1: Setting up Extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")
	models := []interface{}{
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.ReportScan{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	log.Println("✅ Migration complete")
}
