package habit

import (
	"questlog/internal/model"
	"questlog/internal/mutation"
)

// Mutation kinds, used in logs and rollback notifications.
const (
	KindCreate = "habit.create"
	KindToggle = "habit.toggle"
	KindPolicy = "habit.policy"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Name        string
	Description string
	ResetOption string // DAILY, WEEKLY, MONTHLY or NEVER; empty means NEVER
	TimeOfDay   string // "HH:MM", required unless NEVER
}

type UpdatePolicyInput struct {
	ID          string
	ResetOption string
	TimeOfDay   string
}

// --- UseCase Outputs ---

// View is the read model of one habit. Pending counts unresolved remote writes.
type View struct {
	Habit   model.Habit
	Pending int
}

type ListOutput struct {
	Habits []View
}

// MutationOutput carries the habit as it stands after the outcome resolved.
type MutationOutput struct {
	Habit   View
	Outcome mutation.Outcome
}
