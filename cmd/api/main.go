package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasklist-widget/config"
	_ "tasklist-widget/docs" // Swagger docs
	boardRepo "tasklist-widget/internal/board/repository/memory"
	boardUC "tasklist-widget/internal/board/usecase"
	"tasklist-widget/internal/httpserver"
	"tasklist-widget/pkg/listpdf"
	"tasklist-widget/pkg/log"
)

// @title       Task List Widget API
// @description In-memory to-do list boards: add, remove, drag-to-reorder and numeric sort toggle.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting task list widget API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Boards: max=%d ttl=%s", cfg.Boards.MaxBoards, cfg.Boards.TTL)

	// 3. Board domain
	repo := boardRepo.New(boardRepo.Config{
		MaxBoards: cfg.Boards.MaxBoards,
		TTL:       cfg.Boards.TTL,
	}, logger)
	uc := boardUC.New(repo, listpdf.New(cfg.Export.PageSize), logger,
		boardUC.WithExportTitle(cfg.Export.Title),
	)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RateLimit:       cfg.RateLimit,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		BoardUseCase:    uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
