package repository

import (
	"time"

	"questlog/internal/goal"
	"questlog/internal/model"
)

// UpdateGoalOptions carries the descriptive fields sent on goal.update.
type UpdateGoalOptions struct {
	ID           string
	Title        string
	Description  string
	TargetDate   time.Time
	CalendarLink string
}

// RecordEditOptions holds one history entry.
type RecordEditOptions struct {
	GoalID    string
	Kind      goal.EditKind
	Mode      model.ProgressMode
	Progress  int
	CreatedAt time.Time
}

// ListEditsOptions selects the newest entries of one goal.
type ListEditsOptions struct {
	GoalID string
	Limit  int
}
