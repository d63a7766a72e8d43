package usecase

import (
	"context"
	"errors"
	"strings"

	"questlog/internal/habit"
	"questlog/internal/model"
	"questlog/internal/mutation"
	"questlog/internal/state"
	"questlog/pkg/datemath"
)

// commit runs an optimistic change of one habit through the coordinator.
func (uc *implUseCase) commit(
	ctx context.Context,
	kind, id string,
	apply func(h *model.Habit) error,
	persist func(ctx context.Context, snap state.Snapshot[model.Habit]) error,
) (habit.MutationOutput, error) {
	var snap state.Snapshot[model.Habit]

	out, err := uc.coord.Commit(ctx, mutation.Mutation{
		Entity: id,
		Kind:   kind,
		Apply: func() error {
			s, err := uc.habits.Mutate(id, apply)
			if err != nil {
				return err
			}
			snap = s
			return nil
		},
		Persist: func(ctx context.Context) error {
			return persist(ctx, snap)
		},
		Rollback: func() {
			if !uc.habits.Restore(snap) {
				uc.l.Warnf(ctx, "habit.usecase.restore: %s on %s superseded by a later write", kind, id)
			}
		},
	})
	if errors.Is(err, state.ErrNotTracked) {
		return habit.MutationOutput{}, habit.ErrHabitNotFound
	}
	if err != nil {
		return habit.MutationOutput{}, err
	}

	v, _ := uc.view(id)
	return habit.MutationOutput{Habit: v, Outcome: out}, nil
}

func (uc *implUseCase) view(id string) (habit.View, bool) {
	h, ok := uc.habits.Get(id)
	if !ok {
		return habit.View{}, false
	}
	return habit.View{Habit: h, Pending: uc.coord.InFlight(id)}, true
}

// parsePolicy validates a user supplied policy. NEVER may omit the time.
func parsePolicy(option, timeOfDay string) (model.ResetPolicy, error) {
	p := model.ResetPolicy{Option: model.ResetNever}
	if strings.TrimSpace(option) != "" {
		opt, ok := model.ParseResetOption(option)
		if !ok {
			return model.ResetPolicy{}, habit.ErrInvalidResetOption
		}
		p.Option = opt
	}

	timeOfDay = strings.TrimSpace(timeOfDay)
	if timeOfDay == "" {
		if p.Option != model.ResetNever {
			return model.ResetPolicy{}, habit.ErrInvalidTimeOfDay
		}
		return p, nil
	}
	if !datemath.ValidTimeOfDay(timeOfDay) {
		return model.ResetPolicy{}, habit.ErrInvalidTimeOfDay
	}
	p.TimeOfDay = timeOfDay
	return p, nil
}
