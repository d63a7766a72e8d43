package usecase

import (
	"context"
	"errors"
	"time"

	"questlog/internal/model"
	"questlog/internal/state"
)

var errNotDue = errors.New("habit not due")

// ResetDue clears completed habits whose reset boundary is now. Clearing is
// local only; the next completion toggle carries the state to the sync
// service. A clear that lands while a toggle is in flight wins if it is the
// later local write.
func (uc *implUseCase) ResetDue(ctx context.Context, now time.Time) int {
	cleared := 0
	for _, id := range uc.habits.IDs() {
		_, err := uc.habits.Mutate(id, func(h *model.Habit) error {
			if !uc.evaluator.ShouldReset(*h, now) {
				return errNotDue
			}
			h.Completed = false
			h.CompletedAt = nil
			return nil
		})
		switch {
		case err == nil:
			cleared++
		case errors.Is(err, errNotDue), errors.Is(err, state.ErrNotTracked):
		default:
			uc.l.Errorf(ctx, "habit.usecase.ResetDue %s: %v", id, err)
		}
	}

	if cleared > 0 {
		uc.l.Infof(ctx, "habit.usecase.ResetDue: cleared %d habits", cleared)
	}
	return cleared
}
