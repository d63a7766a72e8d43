package usecase

import (
	"context"

	"questlog/internal/habit"
	"questlog/internal/model"
	"questlog/internal/state"
)

func (uc *implUseCase) UpdatePolicy(ctx context.Context, input habit.UpdatePolicyInput) (habit.MutationOutput, error) {
	policy, err := parsePolicy(input.ResetOption, input.TimeOfDay)
	if err != nil {
		return habit.MutationOutput{}, err
	}

	apply := func(h *model.Habit) error {
		h.ResetPolicy = policy
		return nil
	}

	persist := func(ctx context.Context, snap state.Snapshot[model.Habit]) error {
		return uc.remote.UpdatePolicy(ctx, snap.ID, snap.Applied.ResetPolicy)
	}

	return uc.commit(ctx, habit.KindPolicy, input.ID, apply, persist)
}

// Delete waits for the sync service before removing the habit locally.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, ok := uc.habits.Get(id); !ok {
		return habit.ErrHabitNotFound
	}

	if err := uc.remote.DeleteHabit(ctx, id); err != nil {
		uc.l.Errorf(ctx, "habit.usecase.Delete DeleteHabit %s: %v", id, err)
		return err
	}

	uc.habits.Untrack(id)
	return nil
}
