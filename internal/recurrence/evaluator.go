// Package recurrence decides when a completed habit must be cleared.
package recurrence

import (
	"time"

	"questlog/internal/model"
	"questlog/pkg/datemath"
)

// Evaluator compares wall-clock times in a fixed location.
type Evaluator struct {
	loc *time.Location
}

// NewEvaluator creates an Evaluator for loc. A nil loc evaluates in each
// timestamp's own location.
func NewEvaluator(loc *time.Location) Evaluator {
	return Evaluator{loc: loc}
}

// ShouldReset reports whether h's completion flag must be cleared at now.
//
// The check is edge-triggered: it fires only when now's "HH:MM" equals the
// policy's time of day, not for every tick after it. WEEKLY additionally needs
// the same weekday as the completion, MONTHLY the same day of month.
func (e Evaluator) ShouldReset(h model.Habit, now time.Time) bool {
	if !h.Completed || h.CompletedAt == nil || !h.ResetPolicy.Actionable() {
		return false
	}

	now = e.in(now)
	if datemath.FormatTimeOfDay(now) != h.ResetPolicy.TimeOfDay {
		return false
	}

	completedAt := e.in(*h.CompletedAt)

	switch h.ResetPolicy.Option {
	case model.ResetDaily:
		return true
	case model.ResetWeekly:
		return now.Weekday() == completedAt.Weekday()
	case model.ResetMonthly:
		return now.Day() == completedAt.Day()
	default:
		return false
	}
}

func (e Evaluator) in(t time.Time) time.Time {
	if e.loc == nil {
		return t
	}
	return t.In(e.loc)
}

// ShouldReset evaluates in the timestamps' own locations.
func ShouldReset(h model.Habit, now time.Time) bool {
	return Evaluator{}.ShouldReset(h, now)
}
