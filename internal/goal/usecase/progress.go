package usecase

import (
	"context"
	"errors"

	"questlog/internal/goal"
	"questlog/internal/model"
	"questlog/internal/mutation"
	"questlog/internal/progress"
	"questlog/internal/state"
)

// SetManualProgress pins progress and switches the goal to MANUAL.
func (uc *implUseCase) SetManualProgress(ctx context.Context, input goal.SetProgressInput) (goal.MutationOutput, error) {
	if err := progress.Validate(input.Progress); err != nil {
		return goal.MutationOutput{}, goal.ErrInvalidProgress
	}

	apply := func(g *model.Goal) error {
		return progress.ApplyManual(g, input.Progress)
	}

	persist := func(ctx context.Context, snap state.Snapshot[model.Goal]) error {
		if err := uc.remote.SetProgress(ctx, snap.ID, input.Progress); err != nil {
			return err
		}
		uc.recordEdit(ctx, snap.Applied, goal.EditManualProgress)
		return nil
	}

	return uc.commit(ctx, goal.KindProgress, input.GoalID, apply, persist)
}

// ToggleMode flips between AUTOMATIC and MANUAL. Switching to AUTOMATIC
// derives once and persists the result like a user edit.
func (uc *implUseCase) ToggleMode(ctx context.Context, id string) (goal.MutationOutput, error) {
	apply := func(g *model.Goal) error {
		progress.ToggleMode(g)
		return nil
	}

	persist := func(ctx context.Context, snap state.Snapshot[model.Goal]) error {
		if snap.Applied.Progress != snap.Prior.Progress {
			if err := uc.remote.SetProgress(ctx, snap.ID, snap.Applied.Progress); err != nil {
				return err
			}
		}
		uc.recordEdit(ctx, snap.Applied, goal.EditModeToggle)
		return nil
	}

	return uc.commit(ctx, goal.KindMode, id, apply, persist)
}

// ReconcileProgress corrects AUTOMATIC goals whose progress disagrees with
// their subtasks, in favour of the local derivation. Goals with an
// unresolved write are left alone; that write re-derives on its own.
func (uc *implUseCase) ReconcileProgress(ctx context.Context) (int, error) {
	corrected := 0
	for _, g := range uc.goals.List() {
		if !progress.Stale(g) || uc.coord.InFlight(g.ID) > 0 {
			continue
		}

		var snap state.Snapshot[model.Goal]
		_, err := uc.coord.CommitAsync(ctx, mutation.Mutation{
			Entity: g.ID,
			Kind:   goal.KindProgress,
			Apply: func() error {
				s, err := uc.goals.Mutate(g.ID, func(cur *model.Goal) error {
					if !progress.Rederive(cur) {
						return errUnchanged
					}
					return nil
				})
				snap = s
				return err
			},
			Persist: func(ctx context.Context) error {
				return uc.persistProgress(ctx, snap, goal.EditDerived)
			},
			Rollback: func() {
				uc.restore(ctx, goal.KindProgress, snap)
			},
		})
		switch {
		case err == nil:
			corrected++
		case errors.Is(err, errUnchanged), errors.Is(err, state.ErrNotTracked):
		default:
			uc.l.Errorf(ctx, "goal.usecase.ReconcileProgress %s: %v", g.ID, err)
		}
	}

	if corrected > 0 {
		uc.l.Infof(ctx, "goal.usecase.ReconcileProgress: corrected %d goals", corrected)
	}
	return corrected, nil
}
