package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"questlog/internal/goal"
	"questlog/internal/habit"
	"questlog/internal/middleware"
	"questlog/internal/notify"
	"questlog/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Domains
	goalUC   goal.UseCase
	habitUC  habit.UseCase
	notifyUC notify.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Config

	GoalUseCase   goal.UseCase
	HabitUseCase  habit.UseCase
	NotifyUseCase notify.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		goalUC:          cfg.GoalUseCase,
		habitUC:         cfg.HabitUseCase,
		notifyUC:        cfg.NotifyUseCase,
	}
	if logger != nil {
		srv.mw = middleware.New(logger, cfg.Middleware)
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.goalUC == nil {
		return errors.New("goal use case is required")
	}
	if srv.habitUC == nil {
		return errors.New("habit use case is required")
	}
	if srv.notifyUC == nil {
		return errors.New("notify use case is required")
	}
	return nil
}
