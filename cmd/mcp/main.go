// questlog MCP server
//
// Exposes goal and habit entry points to AI agents over stdio. Logs go to
// stderr so they never mix with the protocol on stdout.
//
// Usage:
//
//	questlog-mcp
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"questlog/config"
	"questlog/internal/app"
	"questlog/internal/mcptools"
	"questlog/pkg/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: false,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("creating app: %w", err)
	}
	defer a.Close()

	a.Load(ctx, logger)
	if err := a.Scheduler.Start(ctx); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}

	s := mcptools.NewServer(a.Goals, a.Habits, a.Notify)
	return server.ServeStdio(s)
}
