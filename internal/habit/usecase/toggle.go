package usecase

import (
	"context"

	"questlog/internal/habit"
	"questlog/internal/model"
	"questlog/internal/state"
)

// ToggleCompletion flips the completion flag. Completing stamps the current
// time, un-completing clears it.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, id string) (habit.MutationOutput, error) {
	now := uc.now()

	apply := func(h *model.Habit) error {
		h.Completed = !h.Completed
		if h.Completed {
			at := now
			h.CompletedAt = &at
		} else {
			h.CompletedAt = nil
		}
		return nil
	}

	persist := func(ctx context.Context, snap state.Snapshot[model.Habit]) error {
		h := snap.Applied
		return uc.remote.SetCompletion(ctx, h.ID, h.Completed, h.CompletedAt)
	}

	return uc.commit(ctx, habit.KindToggle, id, apply, persist)
}
