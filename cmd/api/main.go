package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"questlog/config"
	_ "questlog/docs" // Swagger docs
	"questlog/internal/app"
	"questlog/internal/httpserver"
	"questlog/internal/middleware"
	"questlog/pkg/log"
)

// @title       questlog API
// @description Goals with subtask-derived progress and recurring habits, saved optimistically to a sync service.
// @version     1
// @host        localhost:8080
// @schemes     http
// @BasePath    /
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting questlog...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Sync service: %s", cfg.Remote.URL)

	// 3. Domains
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize app: ", err)
		return
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error(ctx, "Failed to close app: ", err)
		}
	}()

	a.Load(ctx, logger)

	// 4. Scheduler, stopped by a.Close
	if err := a.Scheduler.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start scheduler: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.Config{
			AccessToken:     cfg.API.AccessToken,
			RateLimitPerMin: cfg.API.RateLimitPerMin,
		},
		GoalUseCase:   a.Goals,
		HabitUseCase:  a.Habits,
		NotifyUseCase: a.Notify,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
