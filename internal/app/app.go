// Package app builds the shared object graph used by both the HTTP API and
// the MCP server.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"questlog/config"
	"questlog/internal/goal"
	goalRemote "questlog/internal/goal/repository/remote"
	goalSqlite "questlog/internal/goal/repository/sqlite"
	goalUC "questlog/internal/goal/usecase"
	"questlog/internal/habit"
	habitRemote "questlog/internal/habit/repository/remote"
	habitUC "questlog/internal/habit/usecase"
	"questlog/internal/mutation"
	"questlog/internal/notify"
	notifyUC "questlog/internal/notify/usecase"
	"questlog/internal/scheduler"
	"questlog/pkg/datemath"
	"questlog/pkg/gcalendar"
	"questlog/pkg/log"
	pkgRemote "questlog/pkg/remote"
	"questlog/pkg/sqlite"
)

const historyFile = "history.db"

// App holds the use cases and background components of one process.
type App struct {
	Goals       goal.UseCase
	Habits      habit.UseCase
	Notify      notify.UseCase
	Coordinator *mutation.Coordinator
	Scheduler   *scheduler.Scheduler

	db *sql.DB
}

// New wires every component from cfg. Close must be called on shutdown.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	dates, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler timezone: %w", err)
	}

	db, err := sqlite.Open(filepath.Join(cfg.History.DataDir, historyFile))
	if err != nil {
		return nil, err
	}
	history, err := goalSqlite.New(db, l)
	if err != nil {
		db.Close()
		return nil, err
	}

	client := pkgRemote.NewClient(pkgRemote.Config{
		BaseURL:         cfg.Remote.URL,
		AccessToken:     cfg.Remote.AccessToken,
		Timeout:         cfg.Remote.Timeout,
		RateLimitPerSec: cfg.Remote.RateLimitPerSec,
		Burst:           cfg.Remote.Burst,
	})

	feed := notifyUC.New(l, cfg.Notify.Capacity, cfg.Notify.TTL)
	coord := mutation.New(l, feed)

	goals := goalUC.New(
		l,
		goalRemote.New(client, l, dates.Location()),
		history,
		coord,
		dates,
		newCalendar(ctx, cfg.GoogleCalendar, l),
		cfg.GoogleCalendar.CalendarID,
	)
	habits := habitUC.New(l, habitRemote.New(client, l, dates.Location()), coord, dates)

	sched := scheduler.New(l, scheduler.Config{
		Interval: cfg.Scheduler.Interval,
		Habits:   habits,
		Goals:    goals,
	})

	return &App{
		Goals:       goals,
		Habits:      habits,
		Notify:      feed,
		Coordinator: coord,
		Scheduler:   sched,
		db:          db,
	}, nil
}

// Load fetches goals and habits from the sync service. A failure leaves the
// corresponding list empty until the next refresh.
func (a *App) Load(ctx context.Context, l log.Logger) {
	if _, err := a.Goals.Refresh(ctx); err != nil {
		l.Warnf(ctx, "app.Load goals: %v", err)
	}
	if _, err := a.Habits.Refresh(ctx); err != nil {
		l.Warnf(ctx, "app.Load habits: %v", err)
	}
}

// Close stops the scheduler, waits for unresolved remote writes and closes
// the history database.
func (a *App) Close() error {
	a.Scheduler.Stop()
	a.Coordinator.Wait()
	return a.db.Close()
}

// newCalendar returns nil when the calendar is not configured or unusable.
func newCalendar(ctx context.Context, cfg config.GoogleCalendarConfig, l log.Logger) gcalendar.ICalendar {
	if cfg.CredentialsPath == "" {
		return nil
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		l.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate a token")
		return nil
	}
	l.Info(ctx, "Google Calendar initialized")
	return client
}
