package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"questlog/internal/goal"
	"questlog/internal/model"
	"questlog/internal/progress"
	"questlog/internal/state"
)

// ToggleSubtask flips one subtask. An AUTOMATIC goal re-derives its progress
// in the same local write, so a rollback restores both.
func (uc *implUseCase) ToggleSubtask(ctx context.Context, input goal.ToggleSubtaskInput) (goal.MutationOutput, error) {
	apply := func(g *model.Goal) error {
		idx := g.SubtaskIndex(input.SubtaskID)
		if idx < 0 {
			return goal.ErrSubtaskNotFound
		}
		g.Subtasks[idx].Completed = !g.Subtasks[idx].Completed
		progress.Rederive(g)
		return nil
	}

	persist := func(ctx context.Context, snap state.Snapshot[model.Goal]) error {
		completed := snap.Applied.Subtasks[snap.Applied.SubtaskIndex(input.SubtaskID)].Completed
		if err := uc.remote.SetSubtaskCompletion(ctx, snap.ID, input.SubtaskID, completed); err != nil {
			return err
		}
		if err := uc.persistProgress(ctx, snap, goal.EditDerived); err != nil {
			uc.compensate(ctx, "ToggleSubtask", func() error {
				return uc.remote.SetSubtaskCompletion(ctx, snap.ID, input.SubtaskID, !completed)
			})
			return err
		}
		return nil
	}

	return uc.commit(ctx, goal.KindSubtaskToggle, input.GoalID, apply, persist)
}

func (uc *implUseCase) AddSubtask(ctx context.Context, input goal.AddSubtaskInput) (goal.MutationOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return goal.MutationOutput{}, goal.ErrInvalidTitle
	}
	st := model.Subtask{ID: uuid.NewString(), Title: title}

	apply := func(g *model.Goal) error {
		g.Subtasks = append(g.Subtasks, st)
		progress.Rederive(g)
		return nil
	}

	persist := func(ctx context.Context, snap state.Snapshot[model.Goal]) error {
		if err := uc.remote.CreateSubtask(ctx, snap.ID, st); err != nil {
			return err
		}
		if err := uc.persistProgress(ctx, snap, goal.EditDerived); err != nil {
			uc.compensate(ctx, "AddSubtask", func() error {
				return uc.remote.DeleteSubtask(ctx, snap.ID, st.ID)
			})
			return err
		}
		return nil
	}

	return uc.commit(ctx, goal.KindSubtaskAdd, input.GoalID, apply, persist)
}

// DeleteSubtask removes one subtask. Removing the last subtask leaves
// progress at its last value.
func (uc *implUseCase) DeleteSubtask(ctx context.Context, input goal.DeleteSubtaskInput) (goal.MutationOutput, error) {
	var removed model.Subtask

	apply := func(g *model.Goal) error {
		idx := g.SubtaskIndex(input.SubtaskID)
		if idx < 0 {
			return goal.ErrSubtaskNotFound
		}
		removed = g.Subtasks[idx]
		g.Subtasks = append(g.Subtasks[:idx], g.Subtasks[idx+1:]...)
		progress.Rederive(g)
		return nil
	}

	persist := func(ctx context.Context, snap state.Snapshot[model.Goal]) error {
		if err := uc.remote.DeleteSubtask(ctx, snap.ID, input.SubtaskID); err != nil {
			return err
		}
		if err := uc.persistProgress(ctx, snap, goal.EditDerived); err != nil {
			uc.compensate(ctx, "DeleteSubtask", func() error {
				return uc.remote.CreateSubtask(ctx, snap.ID, removed)
			})
			return err
		}
		return nil
	}

	return uc.commit(ctx, goal.KindSubtaskDelete, input.GoalID, apply, persist)
}

// compensate undoes the first half of a two-step remote write whose second
// step failed, so the sync service matches the restored local state.
func (uc *implUseCase) compensate(ctx context.Context, op string, undo func() error) {
	if err := undo(); err != nil {
		uc.l.Errorf(ctx, "goal.usecase.%s compensate: %v", op, err)
	}
}
