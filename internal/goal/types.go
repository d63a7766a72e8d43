package goal

import (
	"time"

	"questlog/internal/model"
	"questlog/internal/mutation"
)

// Mutation kinds, used in logs and rollback notifications.
const (
	KindCreate        = "goal.create"
	KindUpdate        = "goal.update"
	KindProgress      = "goal.progress"
	KindMode          = "goal.mode"
	KindSubtaskAdd    = "subtask.add"
	KindSubtaskToggle = "subtask.toggle"
	KindSubtaskDelete = "subtask.delete"
)

// EditKind classifies an entry in a goal's local edit history.
type EditKind string

const (
	EditManualProgress EditKind = "MANUAL_PROGRESS"
	EditModeToggle     EditKind = "MODE_TOGGLE"
	EditDerived        EditKind = "DERIVED"
)

// Edit is one committed progress or mode change.
type Edit struct {
	ID        int64
	GoalID    string
	Kind      EditKind
	Mode      model.ProgressMode
	Progress  int
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	TargetDate  string // YYYY-MM-DD or a relative phrase such as "in 2 weeks"
	Subtasks    []string
}

// UpdateInput holds descriptive fields; nil means unchanged.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	TargetDate  *string // empty string clears the date
}

type AddSubtaskInput struct {
	GoalID string
	Title  string
}

type ToggleSubtaskInput struct {
	GoalID    string
	SubtaskID string
}

type DeleteSubtaskInput struct {
	GoalID    string
	SubtaskID string
}

type SetProgressInput struct {
	GoalID   string
	Progress int
}

type HistoryInput struct {
	GoalID string
	Limit  int
}

// --- UseCase Outputs ---

// View is the read model of one goal. Pending counts unresolved remote writes.
type View struct {
	Goal    model.Goal
	Pending int
}

type ListOutput struct {
	Goals []View
}

// MutationOutput carries the goal as it stands after the outcome resolved.
type MutationOutput struct {
	Goal    View
	Outcome mutation.Outcome
}

type HistoryOutput struct {
	Edits []Edit
}
