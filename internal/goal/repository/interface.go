package repository

import (
	"context"

	"questlog/internal/goal"
	"questlog/internal/model"
)

// RemoteRepository is the goal side of the sync service.
// Every write returns an error when the service rejects it.
type RemoteRepository interface {
	FetchGoals(ctx context.Context) ([]model.Goal, error)
	FetchGoal(ctx context.Context, id string) (model.Goal, error)
	CreateGoal(ctx context.Context, g model.Goal) error
	UpdateGoal(ctx context.Context, opt UpdateGoalOptions) error
	SetProgress(ctx context.Context, id string, progress int) error
	DeleteGoal(ctx context.Context, id string) error

	CreateSubtask(ctx context.Context, goalID string, st model.Subtask) error
	SetSubtaskCompletion(ctx context.Context, goalID, subtaskID string, completed bool) error
	DeleteSubtask(ctx context.Context, goalID, subtaskID string) error
}

// HistoryRepository stores the local edit history that mode is restored from.
type HistoryRepository interface {
	RecordEdit(ctx context.Context, opt RecordEditOptions) error
	LatestMode(ctx context.Context, goalID string) (model.ProgressMode, bool, error)
	ListEdits(ctx context.Context, opt ListEditsOptions) ([]goal.Edit, error)
	DeleteGoalHistory(ctx context.Context, goalID string) error
}
