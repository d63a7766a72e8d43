package remote

import (
	"encoding/json"
	"fmt"
)

// Operation names a remote write understood by the sync service.
type Operation string

const (
	OpCreateGoal           Operation = "goal.create"
	OpUpdateGoal           Operation = "goal.update"
	OpSetGoalProgress      Operation = "goal.progress"
	OpDeleteGoal           Operation = "goal.delete"
	OpCreateSubtask        Operation = "subtask.create"
	OpSetSubtaskCompletion Operation = "subtask.completion"
	OpDeleteSubtask        Operation = "subtask.delete"
	OpCreateHabit          Operation = "habit.create"
	OpSetHabitCompletion   Operation = "habit.completion"
	OpUpdateHabitPolicy    Operation = "habit.policy"
	OpDeleteHabit          Operation = "habit.delete"
)

// Resource is a readable collection on the remote service.
type Resource string

const (
	ResourceGoals  Resource = "goals"
	ResourceHabits Resource = "habits"
)

// Result is the response envelope of Perform.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Err converts an unsuccessful result into an error wrapping ErrRejected.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	if r.Error == "" {
		return ErrRejected
	}
	return fmt.Errorf("%w: %s", ErrRejected, r.Error)
}

// performRequest is the body for POST /api/v1/operations.
type performRequest struct {
	Operation Operation `json:"operation"`
	EntityID  string    `json:"entity_id"`
	Payload   any       `json:"payload,omitempty"`
}
