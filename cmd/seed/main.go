package main

import (
	"context"
	"log"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/bootstrap"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/config"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/model"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/logger"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/pkg/database"

	"github.com/fatih/color"
)

func str(s string) *string { return &s }

func main() {
	cfg := config.Load()

	db, err := database.NewGormDB(database.GormConfig{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: cfg.Database.LogLevel,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := database.AutoMigrate(db, model.All()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	container := bootstrap.NewContainerWithLoggers(db, cfg, bootstrap.Loggers{
		System:   logger.NewNopLogger(),
		Activity: logger.NewIsolatedLogger(cfg.App.ActivityLogPath),
	})
	defer container.Close()

	ctx := context.Background()
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Consumer not started: %v", err)
	}

	header := color.New(color.FgCyan, color.Bold)
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)

	header.Println("Seeding demo data...")

	user, err := container.UserService.Create(ctx, &dto.CreateUserRequest{Name: str("alice"), Password: str("p1")})
	if err != nil {
		fail.Printf("create user: %v\n", err)
		return
	}
	ok.Printf("  user     %s (%s)\n", user.Name, user.Id)

	notebook, err := container.NotebookService.Create(ctx, user.Id, &dto.CreateNotebookRequest{Title: str("Trip")})
	if err != nil {
		fail.Printf("create notebook: %v\n", err)
		return
	}
	ok.Printf("  notebook Trip (%s)\n", notebook.Id)

	page, err := container.PageService.Create(ctx, user.Id, notebook.Id, &dto.CreatePageRequest{Title: str("Day1"), Content: str("hi")})
	if err != nil {
		fail.Printf("create page: %v\n", err)
		return
	}
	ok.Printf("  page     Day1 (%s)\n", page.Id)

	header.Println("Seeding completed!")
}
