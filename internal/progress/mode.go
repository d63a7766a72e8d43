package progress

import (
	"errors"
	"fmt"

	"questlog/internal/model"
)

var ErrOutOfRange = errors.New("progress must be between 0 and 100")

// Validate checks that value is a legal progress percentage.
func Validate(value int) error {
	if value < MinProgress || value > MaxProgress {
		return fmt.Errorf("%w: got %d", ErrOutOfRange, value)
	}
	return nil
}

// ApplyManual pins progress to value and switches the goal to MANUAL.
// This is the only AUTOMATIC -> MANUAL transition.
func ApplyManual(g *model.Goal, value int) error {
	if err := Validate(value); err != nil {
		return err
	}
	g.Mode = model.ProgressModeManual
	g.Progress = value
	return nil
}

// ToggleMode flips the goal's mode. Switching to AUTOMATIC derives once
// immediately so display converges to the subtask state at the moment of the switch.
// It reports whether progress changed.
func ToggleMode(g *model.Goal) bool {
	if g.EffectiveMode() == model.ProgressModeManual {
		g.Mode = model.ProgressModeAutomatic
		return Rederive(g)
	}
	g.Mode = model.ProgressModeManual
	return false
}

// Rederive overwrites progress with the derived value when the goal is
// AUTOMATIC and has subtasks. MANUAL goals are never touched.
func Rederive(g *model.Goal) bool {
	if g.EffectiveMode() != model.ProgressModeAutomatic {
		return false
	}
	derived, ok := Derive(g.Subtasks, g.Progress)
	if !ok || derived == g.Progress {
		return false
	}
	g.Progress = derived
	return true
}

// Stale reports whether an AUTOMATIC goal's progress disagrees with its subtasks.
func Stale(g model.Goal) bool {
	if g.EffectiveMode() != model.ProgressModeAutomatic {
		return false
	}
	derived, ok := Derive(g.Subtasks, g.Progress)
	return ok && derived != g.Progress
}
