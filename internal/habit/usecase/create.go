package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"questlog/internal/habit"
	"questlog/internal/model"
	"questlog/internal/mutation"
)

// Create tracks a new habit immediately and removes it again if the sync
// service rejects it.
func (uc *implUseCase) Create(ctx context.Context, input habit.CreateInput) (habit.MutationOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return habit.MutationOutput{}, habit.ErrInvalidName
	}
	policy, err := parsePolicy(input.ResetOption, input.TimeOfDay)
	if err != nil {
		return habit.MutationOutput{}, err
	}

	h := model.Habit{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		ResetPolicy: policy,
	}

	out, err := uc.coord.Commit(ctx, mutation.Mutation{
		Entity: h.ID,
		Kind:   habit.KindCreate,
		Apply: func() error {
			return uc.habits.Insert(h.ID, h)
		},
		Persist: func(ctx context.Context) error {
			return uc.remote.CreateHabit(ctx, h)
		},
		Rollback: func() {
			uc.habits.Untrack(h.ID)
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "habit.usecase.Create: %v", err)
		return habit.MutationOutput{}, err
	}

	v, ok := uc.view(h.ID)
	if !ok {
		v = habit.View{Habit: h}
	}
	return habit.MutationOutput{Habit: v, Outcome: out}, nil
}
