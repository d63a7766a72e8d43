package repository

import (
	"context"
	"time"

	"questlog/internal/model"
)

// RemoteRepository is the habit side of the sync service.
// Every write returns an error when the service rejects it.
type RemoteRepository interface {
	FetchHabits(ctx context.Context) ([]model.Habit, error)
	FetchHabit(ctx context.Context, id string) (model.Habit, error)
	CreateHabit(ctx context.Context, h model.Habit) error
	SetCompletion(ctx context.Context, id string, completed bool, completedAt *time.Time) error
	UpdatePolicy(ctx context.Context, id string, policy model.ResetPolicy) error
	DeleteHabit(ctx context.Context, id string) error
}
