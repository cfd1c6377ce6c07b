package main

import (
	"log"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/config"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/model"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDB(database.GormConfig{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: cfg.Database.LogLevel,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Printf("Running AutoMigrate (%s)...", cfg.Database.Driver)

	// 3. AutoMigrate users, notebooks and pages. No foreign keys are created.
	if err := database.AutoMigrate(db, model.All()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Success: Database migration completed.")
}
